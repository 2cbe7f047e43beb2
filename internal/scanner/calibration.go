package scanner

// Monotonic mapping from a 0-100 signal score to a win-probability estimate.
// The piecewise-linear knots are a stand-in for isotonic calibration against
// realized trade outcomes; the shape flattens toward the top so exceptional
// scores do not promise unrealistic hit rates.

// CalibrationKnot anchors the piecewise-linear score-to-probability curve.
type CalibrationKnot struct {
	Score       float64 `json:"score"`
	Probability float64 `json:"probability"`
}

var calibrationKnots = []CalibrationKnot{
	{0, 0.35},
	{20, 0.45},
	{40, 0.55},
	{60, 0.62},
	{80, 0.68},
	{100, 0.72},
}

// MinProbability and MaxProbability bound the calibrated output.
const (
	MinProbability = 0.35
	MaxProbability = 0.72
)

// ScoreToProbability maps a signal score to a win-probability estimate.
// Scores outside [0, 100] clamp to the boundary probabilities.
func ScoreToProbability(score float64) float64 {
	if score <= calibrationKnots[0].Score {
		return calibrationKnots[0].Probability
	}
	last := calibrationKnots[len(calibrationKnots)-1]
	if score >= last.Score {
		return last.Probability
	}
	for i := 1; i < len(calibrationKnots); i++ {
		lo, hi := calibrationKnots[i-1], calibrationKnots[i]
		if score <= hi.Score {
			w := (score - lo.Score) / (hi.Score - lo.Score)
			return lo.Probability + w*(hi.Probability-lo.Probability)
		}
	}
	return last.Probability
}

// ValidateCalibration confirms the knot table is strictly increasing in both
// score and probability, which guarantees the mapping is monotonic.
func ValidateCalibration() bool {
	for i := 1; i < len(calibrationKnots); i++ {
		if calibrationKnots[i].Score <= calibrationKnots[i-1].Score {
			return false
		}
		if calibrationKnots[i].Probability <= calibrationKnots[i-1].Probability {
			return false
		}
	}
	return true
}

// CalibrationInfo describes the active calibration for diagnostics.
type CalibrationInfo struct {
	Type           string            `json:"calibration_type"`
	Monotonic      bool              `json:"is_monotonic"`
	ScoreMin       float64           `json:"score_min"`
	ScoreMax       float64           `json:"score_max"`
	ProbabilityMin float64           `json:"probability_min"`
	ProbabilityMax float64           `json:"probability_max"`
	Knots          []CalibrationKnot `json:"knots"`
}

// Calibration returns the active score-to-probability calibration descriptor.
func Calibration() CalibrationInfo {
	knots := make([]CalibrationKnot, len(calibrationKnots))
	copy(knots, calibrationKnots)
	return CalibrationInfo{
		Type:           "piecewise_linear",
		Monotonic:      ValidateCalibration(),
		ScoreMin:       calibrationKnots[0].Score,
		ScoreMax:       calibrationKnots[len(calibrationKnots)-1].Score,
		ProbabilityMin: MinProbability,
		ProbabilityMax: MaxProbability,
		Knots:          knots,
	}
}

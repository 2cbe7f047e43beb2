package scanner

import "testing"

func TestScoreToProbabilityBounds(t *testing.T) {
	cases := []struct {
		score float64
		want  float64
	}{
		{-50, MinProbability},
		{0, MinProbability},
		{100, MaxProbability},
		{150, MaxProbability},
	}
	for _, c := range cases {
		if got := ScoreToProbability(c.score); got != c.want {
			t.Errorf("ScoreToProbability(%g) = %g, want %g", c.score, got, c.want)
		}
	}
}

func TestScoreToProbabilityKnots(t *testing.T) {
	for _, k := range calibrationKnots {
		if got := ScoreToProbability(k.Score); got != k.Probability {
			t.Errorf("ScoreToProbability(%g) = %g, want knot value %g", k.Score, got, k.Probability)
		}
	}
}

func TestScoreToProbabilityInterpolation(t *testing.T) {
	// Halfway between the (0, 0.35) and (20, 0.45) knots.
	if got := ScoreToProbability(10); got != 0.4 {
		t.Errorf("ScoreToProbability(10) = %g, want 0.4", got)
	}
	// Halfway between (40, 0.55) and (60, 0.62).
	if got := ScoreToProbability(50); got != 0.585 {
		t.Errorf("ScoreToProbability(50) = %g, want 0.585", got)
	}
}

func TestScoreToProbabilityMonotonic(t *testing.T) {
	prev := ScoreToProbability(0)
	for s := 1.0; s <= 100; s++ {
		cur := ScoreToProbability(s)
		if cur < prev {
			t.Fatalf("probability decreased at score %g: %g < %g", s, cur, prev)
		}
		prev = cur
	}
}

func TestScoreToProbabilityScenarioRanges(t *testing.T) {
	cases := []struct {
		score  float64
		lo, hi float64
	}{
		{15, 0.35, 0.45},
		{35, 0.45, 0.55},
		{55, 0.55, 0.65},
		{75, 0.60, 0.68},
		{92, 0.68, 0.72},
	}
	for _, c := range cases {
		got := ScoreToProbability(c.score)
		if got < c.lo || got > c.hi {
			t.Errorf("ScoreToProbability(%g) = %g, want in [%g, %g]", c.score, got, c.lo, c.hi)
		}
	}
}

func TestValidateCalibration(t *testing.T) {
	if !ValidateCalibration() {
		t.Fatal("knot table must be strictly monotonic")
	}
}

func TestCalibrationInfo(t *testing.T) {
	info := Calibration()
	if info.Type != "piecewise_linear" {
		t.Errorf("Type = %q", info.Type)
	}
	if !info.Monotonic {
		t.Error("expected monotonic calibration")
	}
	if info.ProbabilityMin != MinProbability || info.ProbabilityMax != MaxProbability {
		t.Errorf("bounds = [%g, %g]", info.ProbabilityMin, info.ProbabilityMax)
	}
	if len(info.Knots) != len(calibrationKnots) {
		t.Errorf("got %d knots, want %d", len(info.Knots), len(calibrationKnots))
	}
}

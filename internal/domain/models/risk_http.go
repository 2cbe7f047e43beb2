package models

// Requests for risk HTTP endpoints. Defined in domain for consistency and reuse.

// MonteCarloRequest is the body of POST /api/risk/montecarlo. Field bounds
// mirror the engine's own parameter validation so the boundary rejects
// malformed input before any compute starts.
type MonteCarloRequest struct {
	WinProbability  float64 `json:"win_probability" default:"0.45" validate:"gte=0.1,lte=0.9"`
	RewardMultiple  float64 `json:"reward_multiple" default:"2.5" validate:"gte=1,lte=5"`
	RiskFraction    float64 `json:"risk_fraction" default:"0.005" validate:"gte=0.001,lte=0.05"`
	TradesPerPeriod int     `json:"trades_per_period" default:"10" validate:"gte=1,lte=50"`
	Periods         int     `json:"periods" default:"52" validate:"gte=4,lte=260"`

	// FixedCostPerTrade and SlippageBps are pointers because zero is a
	// meaningful input (a frictionless simulation). Defaults fill them only
	// when the field is absent from the body.
	FixedCostPerTrade *float64 `json:"fixed_cost_per_trade" default:"1.0" validate:"omitempty,gte=0,lte=100"`
	SlippageBps       *float64 `json:"slippage_bps" default:"10" validate:"omitempty,gte=0,lte=500"`

	StartingCapital float64 `json:"starting_capital" default:"10000" validate:"gte=1000,lte=10000000"`
	NumSimulations  int     `json:"num_simulations" default:"1000" validate:"gte=100,lte=5000"`

	// SignalScore, when set, derives WinProbability through the scanner's
	// score calibration instead of using the explicit value above.
	SignalScore *float64 `json:"signal_score,omitempty" validate:"omitempty,gte=0,lte=100"`

	// Seed makes the ensemble reproducible; zero draws a time-based seed.
	Seed int64 `json:"seed,omitempty"`
}

// Parameters converts the request into the engine's immutable input record.
// Score calibration, when requested, is applied by the use case before this
// conversion is consumed.
func (r *MonteCarloRequest) Parameters() SimulationParameters {
	return SimulationParameters{
		WinProbability:    r.WinProbability,
		RewardMultiple:    r.RewardMultiple,
		RiskFraction:      r.RiskFraction,
		TradesPerPeriod:   r.TradesPerPeriod,
		Periods:           r.Periods,
		FixedCostPerTrade: floatOrDefault(r.FixedCostPerTrade, 1.0),
		SlippageBps:       floatOrDefault(r.SlippageBps, 10),
		StartingCapital:   r.StartingCapital,
		NumSimulations:    r.NumSimulations,
	}
}

// floatOrDefault resolves an optional field: an explicit value wins, an
// absent one falls back to its documented default.
func floatOrDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

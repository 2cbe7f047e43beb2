package models

import "time"

// SimulationParameters is the validated, immutable input to one Monte Carlo
// run. It is constructed once at the boundary and never mutated by the engine.
type SimulationParameters struct {
	WinProbability    float64 `json:"win_probability"`
	RewardMultiple    float64 `json:"reward_multiple"`
	RiskFraction      float64 `json:"risk_fraction"`
	TradesPerPeriod   int     `json:"trades_per_period"`
	Periods           int     `json:"periods"`
	FixedCostPerTrade float64 `json:"fixed_cost_per_trade"`
	SlippageBps       float64 `json:"slippage_bps"`
	StartingCapital   float64 `json:"starting_capital"`
	NumSimulations    int     `json:"num_simulations"`
}

// TotalTrades returns the number of trade events per path.
func (p SimulationParameters) TotalTrades() int {
	return p.TradesPerPeriod * p.Periods
}

// RiskMetrics holds the derived, read-only risk measures of one ensemble.
type RiskMetrics struct {
	Prob2x         float64 `json:"prob_2x"`
	Prob3x         float64 `json:"prob_3x"`
	ProbLoss       float64 `json:"prob_loss"`
	P95MaxDrawdown float64 `json:"p95_max_drawdown"`
	SharpeRatio    float64 `json:"sharpe_ratio"`
	VaR95          float64 `json:"var_95"`
	CVaR95         float64 `json:"cvar_95"`
	WinRate        float64 `json:"win_rate"`
	ProfitFactor   float64 `json:"profit_factor"`
	// ProfitFactorCapped flags the sentinel value used when the ensemble
	// contains no losing trades.
	ProfitFactorCapped bool `json:"profit_factor_capped,omitempty"`
}

// PercentileBands holds cross-sectional equity statistics per trade index,
// used to draw a fan chart. Each slice has TotalTrades()+1 entries.
type PercentileBands struct {
	Mean []float64 `json:"mean"`
	P25  []float64 `json:"p25"`
	P75  []float64 `json:"p75"`
}

// SimulationResult is the complete output of one simulation request.
type SimulationResult struct {
	Parameters SimulationParameters `json:"parameters"`

	MeanFinalEquity   float64 `json:"mean_final_equity"`
	MedianFinalEquity float64 `json:"median_final_equity"`
	StdFinalEquity    float64 `json:"std_final_equity"`
	MinFinalEquity    float64 `json:"min_final_equity"`
	MaxFinalEquity    float64 `json:"max_final_equity"`

	RiskMetrics RiskMetrics `json:"risk_metrics"`

	// SampleEquityPaths carries at most a configured handful of full paths,
	// evenly sampled across the ensemble. Each path has TotalTrades()+1
	// points, starting at StartingCapital.
	SampleEquityPaths [][]float64 `json:"sample_equity_paths"`

	// FinalEquityDistribution has exactly NumSimulations entries.
	FinalEquityDistribution []float64 `json:"final_equity_distribution"`

	Bands PercentileBands `json:"bands"`

	// Warnings carries non-fatal advisories, e.g. a configuration whose raw
	// edge is negative before costs.
	Warnings []string `json:"warnings,omitempty"`

	Seed              int64     `json:"seed"`
	Timestamp         time.Time `json:"timestamp"`
	ComputationTimeMs float64   `json:"computation_time_ms"`
	TotalTrades       int       `json:"total_trades"`
}

package risk

import (
	"fmt"
	"strings"

	"AlphaDesk/internal/domain/models"
)

// Documented parameter bounds. The HTTP boundary enforces the same ranges via
// struct tags; this validator is the engine's own contract and reports every
// violation in one pass.
const (
	MinWinProbability  = 0.1
	MaxWinProbability  = 0.9
	MinRewardMultiple  = 1.0
	MaxRewardMultiple  = 5.0
	MinRiskFraction    = 0.001
	MaxRiskFraction    = 0.05
	MinTradesPerPeriod = 1
	MaxTradesPerPeriod = 50
	MinPeriods         = 4
	MaxPeriods         = 260
	MaxFixedCost       = 100.0
	MaxSlippageBps     = 500.0
	MinStartingCapital = 1000.0
	MaxStartingCapital = 10_000_000.0
	MinSimulations     = 100
	MaxSimulations     = 5000
)

// ValidationIssue describes one out-of-range parameter.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFailedError carries the full list of violations for one
// parameter set. Violations are accumulated, never short-circuited.
type ValidationFailedError struct {
	Issues []ValidationIssue
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, iss := range e.Issues {
		msgs[i] = iss.Message
	}
	return "invalid simulation parameters: " + strings.Join(msgs, "; ")
}

// ValidateParameters checks every field of p against its documented range and
// returns all violations plus any non-fatal warnings. A nil violations slice
// means p is valid as given.
func ValidateParameters(p models.SimulationParameters) (violations []ValidationIssue, warnings []string) {
	rangeChecks := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"win_probability", p.WinProbability, MinWinProbability, MaxWinProbability},
		{"reward_multiple", p.RewardMultiple, MinRewardMultiple, MaxRewardMultiple},
		{"risk_fraction", p.RiskFraction, MinRiskFraction, MaxRiskFraction},
		{"trades_per_period", float64(p.TradesPerPeriod), MinTradesPerPeriod, MaxTradesPerPeriod},
		{"periods", float64(p.Periods), MinPeriods, MaxPeriods},
		{"fixed_cost_per_trade", p.FixedCostPerTrade, 0, MaxFixedCost},
		{"slippage_bps", p.SlippageBps, 0, MaxSlippageBps},
		{"starting_capital", p.StartingCapital, MinStartingCapital, MaxStartingCapital},
		{"num_simulations", float64(p.NumSimulations), MinSimulations, MaxSimulations},
	}

	for _, c := range rangeChecks {
		if c.value < c.min || c.value > c.max {
			violations = append(violations, ValidationIssue{
				Field:   c.field,
				Message: fmt.Sprintf("%s must be between %g and %g, got %g", c.field, c.min, c.max, c.value),
			})
		}
	}

	// An unfavorable raw edge is a legitimate configuration to explore, so it
	// only warns rather than rejects.
	if len(violations) == 0 && p.WinProbability*p.RewardMultiple < 1.0 {
		warnings = append(warnings, fmt.Sprintf(
			"unfavorable raw edge before costs: win_probability*reward_multiple = %.3f < 1.0",
			p.WinProbability*p.RewardMultiple))
	}

	return violations, warnings
}

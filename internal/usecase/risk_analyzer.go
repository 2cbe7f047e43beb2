package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AlphaDesk/internal/domain/models"
	"AlphaDesk/internal/risk"
	"AlphaDesk/internal/scanner"
	"AlphaDesk/internal/service/cache"
	"AlphaDesk/pkg/metrics"
)

// RiskAnalyzer drives the Monte Carlo engine for one request: it bridges the
// scanner's score calibration into the win probability, imposes the wall-clock
// budget, memoizes seeded runs, and records engine metrics. Results are
// all-or-nothing; a timed-out request yields no partial statistics.
type RiskAnalyzer struct {
	engine  *risk.Engine
	rec     *metrics.Recorder
	results *cache.ResultCache
	timeout time.Duration
}

func NewRiskAnalyzer(engine *risk.Engine, rec *metrics.Recorder, results *cache.ResultCache, timeout time.Duration) *RiskAnalyzer {
	return &RiskAnalyzer{engine: engine, rec: rec, results: results, timeout: timeout}
}

// MonteCarlo validates, simulates and aggregates one parameter set.
func (a *RiskAnalyzer) MonteCarlo(ctx context.Context, req *models.MonteCarloRequest) (*models.SimulationResult, error) {
	params := req.Parameters()
	if req.SignalScore != nil {
		params.WinProbability = scanner.ScoreToProbability(*req.SignalScore)
	}

	// Only seeded runs are deterministic enough to memoize.
	var key string
	if a.results != nil && req.Seed != 0 {
		key = cacheKey(params, req.Seed)
		if res, ok := a.results.Get(key); ok {
			return res, nil
		}
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	if a.rec != nil {
		a.rec.SimulationStarted()
		defer a.rec.SimulationFinished()
	}

	res, err := a.engine.Run(ctx, params, req.Seed)
	if err != nil {
		a.recordFailure(err)
		return nil, err
	}

	if a.rec != nil {
		a.rec.RecordSimulation("ok")
		a.rec.RecordDuration(res.ComputationTimeMs / 1000)
		a.rec.RecordTrades(int64(res.TotalTrades) * int64(params.NumSimulations))
	}
	if key != "" {
		a.results.Put(key, res)
	}
	return res, nil
}

func (a *RiskAnalyzer) recordFailure(err error) {
	if a.rec == nil {
		return
	}
	var vErr *risk.ValidationFailedError
	switch {
	case errors.As(err, &vErr):
		a.rec.RecordValidationFailure()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		a.rec.RecordSimulation("timeout")
	default:
		a.rec.RecordSimulation("error")
	}
}

// cacheKey identifies one deterministic run: every engine input plus the seed.
func cacheKey(p models.SimulationParameters, seed int64) string {
	return fmt.Sprintf("%g|%g|%g|%d|%d|%g|%g|%g|%d|%d",
		p.WinProbability, p.RewardMultiple, p.RiskFraction,
		p.TradesPerPeriod, p.Periods,
		p.FixedCostPerTrade, p.SlippageBps, p.StartingCapital,
		p.NumSimulations, seed)
}

package risk

import (
	"context"
	"time"

	"AlphaDesk/internal/domain/models"
	"AlphaDesk/pkg/stat"
)

// DefaultSamplePaths caps how many full equity curves a result carries for
// chart rendering.
const DefaultSamplePaths = 15

// Engine runs the full validate → simulate → aggregate → assemble pipeline.
// It is stateless across requests; every run builds and discards its own
// ensemble.
type Engine struct {
	sim         *Simulator
	samplePaths int
}

// NewEngine creates an engine. samplePaths <= 0 falls back to
// DefaultSamplePaths.
func NewEngine(sim *Simulator, samplePaths int) *Engine {
	if samplePaths <= 0 {
		samplePaths = DefaultSamplePaths
	}
	return &Engine{sim: sim, samplePaths: samplePaths}
}

// Run executes one simulation request. Validation failures return a
// *ValidationFailedError and no computation happens. seed zero draws a
// time-based seed. The recorded computation time covers simulation and
// aggregation only.
func (e *Engine) Run(ctx context.Context, p models.SimulationParameters, seed int64) (*models.SimulationResult, error) {
	violations, warnings := ValidateParameters(p)
	if len(violations) > 0 {
		return nil, &ValidationFailedError{Issues: violations}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	ens, err := e.sim.Run(ctx, p, seed)
	if err != nil {
		return nil, err
	}
	stats := Aggregate(ens, p)
	elapsed := time.Since(start)

	return &models.SimulationResult{
		Parameters: p,

		MeanFinalEquity:   stats.MeanFinalEquity,
		MedianFinalEquity: stats.MedianFinalEquity,
		StdFinalEquity:    stats.StdFinalEquity,
		MinFinalEquity:    stats.MinFinalEquity,
		MaxFinalEquity:    stats.MaxFinalEquity,

		RiskMetrics: stats.Metrics,

		SampleEquityPaths:       samplePaths(ens.Paths, e.samplePaths),
		FinalEquityDistribution: stats.FinalEquity,
		Bands:                   stats.Bands,

		Warnings:          warnings,
		Seed:              seed,
		Timestamp:         time.Now().UTC(),
		ComputationTimeMs: float64(elapsed) / float64(time.Millisecond),
		TotalTrades:       p.TotalTrades(),
	}, nil
}

// samplePaths picks min(limit, len(paths)) full curves evenly spread across the
// ensemble so the sample spans the outcome distribution.
func samplePaths(paths [][]float64, limit int) [][]float64 {
	idx := stat.EvenIndices(len(paths), limit)
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = paths[j]
	}
	return out
}

package risk

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"AlphaDesk/internal/domain/models"
)

// Ensemble is the in-memory result of one simulation run: every equity path
// plus trade-level aggregates accumulated during simulation. It lives only
// for the duration of a single request.
type Ensemble struct {
	// Paths holds NumSimulations equity curves, each TotalTrades()+1 long,
	// index 0 being the starting capital.
	Paths [][]float64

	// Trade-level aggregates across the whole ensemble.
	Wins        int64
	TotalTrades int64
	GrossProfit float64
	GrossLoss   float64
}

// pathStats carries the per-path trade aggregates back through the fan-in.
type pathStats struct {
	wins        int
	grossProfit float64
	grossLoss   float64
}

// Simulator generates ensembles of independent Bernoulli equity paths.
type Simulator struct {
	workers int
}

// NewSimulator creates a path simulator with the given worker-pool size.
// workers <= 0 means one worker per CPU core.
func NewSimulator(workers int) *Simulator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Simulator{workers: workers}
}

// Run simulates p.NumSimulations independent paths. Path i draws from its own
// generator seeded with seed+i, so the ensemble is reproducible regardless of
// how paths are scheduled across workers. Run is all-or-nothing: when ctx is
// cancelled no partial ensemble is returned.
func (s *Simulator) Run(ctx context.Context, p models.SimulationParameters, seed int64) (*Ensemble, error) {
	n := p.NumSimulations
	paths := make([][]float64, n)
	stats := make([]pathStats, n)

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := s.workers
	if workers > n {
		workers = n
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rng := rand.New(rand.NewSource(seed + int64(i)))
				paths[i], stats[i] = simulatePath(p, rng)
			}
		}()
	}

	submit := func() error {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}
	err := submit()
	wg.Wait()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ens := &Ensemble{
		Paths:       paths,
		TotalTrades: int64(n) * int64(p.TotalTrades()),
	}
	for i := range stats {
		ens.Wins += int64(stats[i].wins)
		ens.GrossProfit += stats[i].grossProfit
		ens.GrossLoss += stats[i].grossLoss
	}
	return ens, nil
}

// simulatePath generates one equity curve. Position size is recalculated
// against current equity every trade, so growth and decay both compound.
// Equity floors at zero: once there, the risk unit is zero and remaining
// trades carry no P&L.
func simulatePath(p models.SimulationParameters, rng *rand.Rand) ([]float64, pathStats) {
	trades := p.TotalTrades()
	path := make([]float64, 0, trades+1)
	equity := p.StartingCapital
	path = append(path, equity)

	var st pathStats
	slippage := p.SlippageBps / 10_000

	for t := 0; t < trades; t++ {
		win := rng.Float64() < p.WinProbability
		if win {
			st.wins++
		}

		if equity <= 0 {
			path = append(path, 0)
			continue
		}

		riskUnit := equity * p.RiskFraction
		var gain float64
		if win {
			gain = riskUnit * p.RewardMultiple
		} else {
			gain = -riskUnit
		}
		net := gain - p.FixedCostPerTrade - riskUnit*slippage

		// The floor caps the realized loss at the remaining equity.
		if net < -equity {
			net = -equity
		}
		if net > 0 {
			st.grossProfit += net
		} else if net < 0 {
			st.grossLoss += -net
		}

		equity += net
		path = append(path, equity)
	}

	return path, st
}

package risk

import (
	"math"
	"sort"

	"AlphaDesk/internal/domain/models"
	"AlphaDesk/pkg/stat"
)

// profitFactorSentinel is the documented, JSON-safe stand-in for an undefined
// profit factor (no losing trades in the whole ensemble).
const profitFactorSentinel = 1e9

// periodsPerYear fixes the Sharpe annualization cadence: one period is one
// trading week.
const periodsPerYear = 52.0

// Statistics is the aggregator's reduction of a full ensemble.
type Statistics struct {
	FinalEquity []float64

	MeanFinalEquity   float64
	MedianFinalEquity float64
	StdFinalEquity    float64
	MinFinalEquity    float64
	MaxFinalEquity    float64

	Metrics models.RiskMetrics
	Bands   models.PercentileBands
}

// Aggregate reduces ens into summary scalars, risk metrics and fan-chart
// bands. All percentile computations use linear interpolation.
func Aggregate(ens *Ensemble, p models.SimulationParameters) *Statistics {
	finals := make([]float64, len(ens.Paths))
	for i, path := range ens.Paths {
		finals[i] = path[len(path)-1]
	}

	st := &Statistics{
		FinalEquity:       finals,
		MeanFinalEquity:   stat.Mean(finals),
		MedianFinalEquity: stat.PercentileOf(finals, 50),
		StdFinalEquity:    stat.StdDev(finals),
		MinFinalEquity:    stat.Min(finals),
		MaxFinalEquity:    stat.Max(finals),
	}

	st.Metrics = riskMetrics(ens, p, finals)
	st.Bands = percentileBands(ens.Paths)
	return st
}

func riskMetrics(ens *Ensemble, p models.SimulationParameters, finals []float64) models.RiskMetrics {
	n := float64(len(finals))
	var m models.RiskMetrics

	// Path-level probabilities against starting capital.
	var n2x, n3x, nLoss int
	for _, f := range finals {
		if f >= 2*p.StartingCapital {
			n2x++
		}
		if f >= 3*p.StartingCapital {
			n3x++
		}
		if f < p.StartingCapital {
			nLoss++
		}
	}
	m.Prob2x = float64(n2x) / n
	m.Prob3x = float64(n3x) / n
	m.ProbLoss = float64(nLoss) / n

	// 95th percentile of the per-path maximum drawdown distribution. This is
	// not the drawdown of the mean path.
	drawdowns := make([]float64, len(ens.Paths))
	for i, path := range ens.Paths {
		drawdowns[i] = maxDrawdown(path)
	}
	m.P95MaxDrawdown = stat.PercentileOf(drawdowns, 95)

	m.SharpeRatio = sharpeRatio(ens.Paths, p)

	// VaR/CVaR on final-equity dollar deltas. VaR is the 5th percentile
	// delta; CVaR averages every delta at or below it.
	deltas := make([]float64, len(finals))
	for i, f := range finals {
		deltas[i] = f - p.StartingCapital
	}
	sort.Float64s(deltas)
	m.VaR95 = stat.Percentile(deltas, 5)
	tailSum, tailCount := 0.0, 0
	for _, d := range deltas {
		if d > m.VaR95 {
			break
		}
		tailSum += d
		tailCount++
	}
	if tailCount > 0 {
		m.CVaR95 = tailSum / float64(tailCount)
	} else {
		m.CVaR95 = m.VaR95
	}

	if ens.TotalTrades > 0 {
		m.WinRate = float64(ens.Wins) / float64(ens.TotalTrades)
	}

	m.ProfitFactor, m.ProfitFactorCapped = profitFactor(ens.GrossProfit, ens.GrossLoss)
	return m
}

// maxDrawdown returns the largest peak-to-trough decline along one path as a
// positive fraction of the running peak.
func maxDrawdown(path []float64) float64 {
	peak := path[0]
	maxDD := 0.0
	for _, eq := range path {
		if eq > peak {
			peak = eq
			continue
		}
		if peak > 0 {
			if dd := (peak - eq) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// sharpeRatio pools simple per-trade returns across the whole ensemble and
// annualizes by sqrt(trades per year). Steps taken at zero equity contribute
// a zero return.
func sharpeRatio(paths [][]float64, p models.SimulationParameters) float64 {
	var count float64
	var sum, sum2 float64
	for _, path := range paths {
		for t := 1; t < len(path); t++ {
			var r float64
			if prev := path[t-1]; prev > 0 {
				r = path[t]/prev - 1
			}
			count++
			sum += r
			sum2 += r * r
		}
	}
	if count == 0 {
		return 0
	}
	mean := sum / count
	variance := sum2/count - mean*mean
	if variance <= 0 {
		return 0
	}
	tradesPerYear := float64(p.TradesPerPeriod) * periodsPerYear
	return mean / math.Sqrt(variance) * math.Sqrt(tradesPerYear)
}

// profitFactor returns gross profit over gross loss. With no losing trades
// the ratio is undefined and resolves to a documented finite sentinel; with
// no trades on either side it is a neutral 1.0.
func profitFactor(grossProfit, grossLoss float64) (float64, bool) {
	if grossLoss > 0 {
		return grossProfit / grossLoss, false
	}
	if grossProfit > 0 {
		return profitFactorSentinel, true
	}
	return 1.0, false
}

// percentileBands computes the cross-sectional mean and 25th/75th percentile
// equity at every trade index.
func percentileBands(paths [][]float64) models.PercentileBands {
	if len(paths) == 0 {
		return models.PercentileBands{}
	}
	steps := len(paths[0])
	bands := models.PercentileBands{
		Mean: make([]float64, steps),
		P25:  make([]float64, steps),
		P75:  make([]float64, steps),
	}
	column := make([]float64, len(paths))
	for t := 0; t < steps; t++ {
		for i, path := range paths {
			column[i] = path[t]
		}
		sort.Float64s(column)
		bands.Mean[t] = stat.Mean(column)
		bands.P25[t] = stat.Percentile(column, 25)
		bands.P75[t] = stat.Percentile(column, 75)
	}
	return bands
}

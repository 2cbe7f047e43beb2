package scanner

import "math"

// Trade-setup arithmetic shared with the watchlist scanner: position sizing
// against a stop, round-trip costs expressed in R units, and net expectancy.

// PositionSize returns the share count and dollar size that risk at most
// riskFraction of portfolioValue between entry and stop. A degenerate stop
// (at or through the entry with zero distance) sizes to zero.
func PositionSize(entryPrice, stopPrice, portfolioValue, riskFraction float64) (shares int, dollars float64) {
	riskPerShare := math.Abs(entryPrice - stopPrice)
	if riskPerShare <= 0 || entryPrice <= 0 {
		return 0, 0
	}
	maxRiskDollars := portfolioValue * riskFraction
	shares = int(maxRiskDollars / riskPerShare)
	return shares, float64(shares) * entryPrice
}

// CostsInR converts round-trip slippage and flat fees into R units, the
// fraction of one risk unit consumed by execution costs.
func CostsInR(slippageBps, feesUSD, entryPrice, riskPerShare float64) float64 {
	if riskPerShare <= 0 {
		return 0
	}
	// Slippage is paid on both entry and exit.
	slippagePerShare := slippageBps / 10_000 * entryPrice * 2
	return slippagePerShare/riskPerShare + feesUSD/riskPerShare
}

// NetExpectedR returns the expected R of a setup after costs, assuming a full
// 1R loss when stopped out: p*R - (1-p) - costs.
func NetExpectedR(winProbability, rewardMultiple, costsR float64) float64 {
	return winProbability*rewardMultiple - (1-winProbability) - costsR
}

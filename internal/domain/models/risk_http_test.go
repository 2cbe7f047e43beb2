package models

import "testing"

func TestParametersOptionalCostFields(t *testing.T) {
	// Absent cost fields resolve to their documented defaults.
	req := &MonteCarloRequest{}
	p := req.Parameters()
	if p.FixedCostPerTrade != 1.0 {
		t.Errorf("absent fixed_cost_per_trade = %g, want 1", p.FixedCostPerTrade)
	}
	if p.SlippageBps != 10 {
		t.Errorf("absent slippage_bps = %g, want 10", p.SlippageBps)
	}

	// An explicit zero is kept, not rewritten.
	zero := 0.0
	req.FixedCostPerTrade = &zero
	req.SlippageBps = &zero
	p = req.Parameters()
	if p.FixedCostPerTrade != 0 || p.SlippageBps != 0 {
		t.Errorf("explicit zeros rewritten: cost=%g slippage=%g", p.FixedCostPerTrade, p.SlippageBps)
	}
}

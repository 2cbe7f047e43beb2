package scanner

import (
	"math"
	"testing"
)

func TestPositionSize(t *testing.T) {
	// $100k portfolio risking 1% with a $2 stop distance: $1000 / $2 = 500 shares.
	shares, dollars := PositionSize(50, 48, 100_000, 0.01)
	if shares != 500 {
		t.Errorf("shares = %d, want 500", shares)
	}
	if dollars != 25_000 {
		t.Errorf("dollars = %g, want 25000", dollars)
	}
}

func TestPositionSizeDegenerateStop(t *testing.T) {
	if shares, dollars := PositionSize(50, 50, 100_000, 0.01); shares != 0 || dollars != 0 {
		t.Errorf("got (%d, %g), want (0, 0)", shares, dollars)
	}
	if shares, _ := PositionSize(0, 2, 100_000, 0.01); shares != 0 {
		t.Errorf("non-positive entry must size to zero, got %d", shares)
	}
}

func TestPositionSizeShortSide(t *testing.T) {
	// Stop above entry: distance is still $2.
	shares, _ := PositionSize(48, 50, 100_000, 0.01)
	if shares != 500 {
		t.Errorf("shares = %d, want 500", shares)
	}
}

func TestCostsInR(t *testing.T) {
	// 10 bps round trip on a $50 entry with $2 risk per share plus $1 fees
	// over one share: (0.001*50*2)/2 + 1/2 = 0.05 + 0.5.
	got := CostsInR(10, 1, 50, 2)
	if math.Abs(got-0.55) > 1e-9 {
		t.Errorf("CostsInR = %g, want 0.55", got)
	}
	if CostsInR(10, 1, 50, 0) != 0 {
		t.Error("zero risk per share must cost 0R")
	}
}

func TestNetExpectedR(t *testing.T) {
	// 0.45 * 2.5 - 0.55 = 0.575 before costs.
	got := NetExpectedR(0.45, 2.5, 0.1)
	if math.Abs(got-0.475) > 1e-9 {
		t.Errorf("NetExpectedR = %g, want 0.475", got)
	}
	if NetExpectedR(0.3, 2.0, 0) >= 0 {
		t.Error("unfavorable setup must have negative expectancy")
	}
}

package metrics

import (
	"errors"
	"math"
	"testing"

	"PortfolioLens/internal/model"
)

func TestCostBasisAndMarketValue(t *testing.T) {
	if got := CostBasis(50, 150.2); math.Abs(got-7510.0) > 1e-9 {
		t.Errorf("CostBasis(50, 150.2) = %.4f, want 7510", got)
	}
	if got := MarketValue(50, 180.5); math.Abs(got-9025.0) > 1e-9 {
		t.Errorf("MarketValue(50, 180.5) = %.4f, want 9025", got)
	}
	if got := GainLoss(9025, 7510); math.Abs(got-1515.0) > 1e-9 {
		t.Errorf("GainLoss = %.4f, want 1515", got)
	}
}

func TestReturnPct(t *testing.T) {
	got, err := ReturnPct(1515, 7510)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-20.173102529960052) > 1e-9 {
		t.Errorf("ReturnPct = %.10f, want ~20.1731", got)
	}
}

func TestReturnPctZeroCostBasis(t *testing.T) {
	_, err := ReturnPct(100, 0)
	if !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("expected ErrDivisionUndefined, got %v", err)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{20.173102, 20.17},
		{-4.285714, -4.29},
		{35.0, 35.0},
		{9.996, 10.0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	rows := []model.PricedLot{
		{Lot: model.Lot{Security: "AAPL"}, CostBasis: 1000, MarketValue: 1100, GainLoss: 100},
		{Lot: model.Lot{Security: "AAPL"}, CostBasis: 500, MarketValue: 450, GainLoss: -50},
		{Lot: model.Lot{Security: "MSFT"}, CostBasis: 2000, MarketValue: 2100, GainLoss: 100},
	}
	sum := Summarize("Growth", rows)
	if sum.TotalValue != 3650 || sum.TotalCost != 3500 || sum.TotalGainLoss != 150 {
		t.Errorf("unexpected totals: %+v", sum)
	}
	if sum.Holdings != 2 {
		t.Errorf("expected 2 distinct securities, got %d", sum.Holdings)
	}
	if !sum.ReturnValid {
		t.Fatal("expected valid return")
	}
	if math.Abs(sum.TotalReturnPct-4.29) > 1e-9 {
		t.Errorf("TotalReturnPct = %.4f, want 4.29", sum.TotalReturnPct)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize("", nil)
	if sum.TotalValue != 0 || sum.TotalCost != 0 || sum.Holdings != 0 {
		t.Errorf("expected zero summary, got %+v", sum)
	}
	if sum.ReturnValid {
		t.Error("return must be flagged undefined for an empty lot set")
	}
}

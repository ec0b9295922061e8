package strategy

import (
	"math"
	"testing"

	"PortfolioLens/internal/model"
)

func pos(security string, returnPct float64) model.AggregatedPosition {
	return model.AggregatedPosition{
		Security:    security,
		Sector:      "Technology",
		Quantity:    10,
		CostBasis:   1000,
		MarketValue: 1000 * (1 + returnPct/100),
		GainLoss:    1000 * returnPct / 100,
		ReturnPct:   returnPct,
		ReturnValid: true,
	}
}

func TestMomentumRanking(t *testing.T) {
	positions := []model.AggregatedPosition{
		pos("AAA", 10), pos("BBB", -5), pos("CCC", 20), pos("DDD", 0), pos("EEE", -10),
	}
	res := NewMomentumStrategy().Analyze(positions)

	if math.Abs(res.Metrics["avg_return"]-3.0) > 1e-9 {
		t.Errorf("avg_return = %.4f, want 3.0", res.Metrics["avg_return"])
	}
	top := res.Records["top_performers"]
	if len(top) != 2 || top[0].Security != "CCC" || top[1].Security != "AAA" {
		t.Errorf("top performers = %+v, want CCC then AAA", top)
	}
	bottom := res.Records["bottom_performers"]
	if len(bottom) != 2 || bottom[0].Security != "BBB" || bottom[1].Security != "EEE" {
		t.Errorf("bottom performers = %+v, want BBB then EEE", bottom)
	}
	// Header + 2 top + header + 2 bottom.
	if len(res.Recommendations) != 6 {
		t.Errorf("expected 6 recommendation lines, got %d: %v", len(res.Recommendations), res.Recommendations)
	}
	if res.Recommendations[1] != "- CCC (20.00%)" {
		t.Errorf("unexpected top line: %q", res.Recommendations[1])
	}
	if res.Summary != "Average portfolio return: 3.00%" {
		t.Errorf("unexpected summary: %q", res.Summary)
	}
}

// With fewer than 4 positions the head-2/tail-2 selection overlaps. That is
// long-standing behavior, kept deliberately.
func TestMomentumOverlapWithFewPositions(t *testing.T) {
	positions := []model.AggregatedPosition{
		pos("AAA", 15), pos("BBB", 5), pos("CCC", -5),
	}
	res := NewMomentumStrategy().Analyze(positions)
	top := res.Records["top_performers"]
	bottom := res.Records["bottom_performers"]
	if len(top) != 2 || len(bottom) != 2 {
		t.Fatalf("expected 2 top and 2 bottom, got %d/%d", len(top), len(bottom))
	}
	// BBB is both the 2nd-best and the 2nd-worst performer.
	if top[1].Security != "BBB" || bottom[0].Security != "BBB" {
		t.Errorf("expected BBB in both lists, got top=%+v bottom=%+v", top, bottom)
	}
}

func TestMomentumSkipsUndefinedReturns(t *testing.T) {
	undefined := model.AggregatedPosition{Security: "ZRO", MarketValue: 500}
	positions := []model.AggregatedPosition{pos("AAA", 10), pos("BBB", -5), undefined}
	res := NewMomentumStrategy().Analyze(positions)
	if math.Abs(res.Metrics["avg_return"]-2.5) > 1e-9 {
		t.Errorf("avg_return = %.4f, want 2.5 over the two rankable positions", res.Metrics["avg_return"])
	}
	for _, rec := range append(res.Records["top_performers"], res.Records["bottom_performers"]...) {
		if rec.Security == "ZRO" {
			t.Error("position with undefined return must not be ranked")
		}
	}
}

func TestMomentumEmpty(t *testing.T) {
	res := NewMomentumStrategy().Analyze(nil)
	if len(res.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %v", res.Recommendations)
	}
	if _, ok := res.Metrics["avg_return"]; ok {
		t.Error("avg_return must be omitted, not computed, for an empty set")
	}
}

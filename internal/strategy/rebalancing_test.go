package strategy

import (
	"math"
	"testing"

	"PortfolioLens/internal/model"
)

func posWithValue(security string, marketValue float64) model.AggregatedPosition {
	return model.AggregatedPosition{
		Security:    security,
		Quantity:    10,
		CostBasis:   marketValue,
		MarketValue: marketValue,
		ReturnValid: true,
	}
}

func TestRebalancingFlagsDrift(t *testing.T) {
	positions := []model.AggregatedPosition{
		posWithValue("AAA", 600),
		posWithValue("BBB", 200),
		posWithValue("CCC", 100),
		posWithValue("DDD", 100),
	}
	res := NewRebalancingStrategy().Analyze(positions)

	if math.Abs(res.Metrics["target_weight"]-25.0) > 1e-9 {
		t.Errorf("target_weight = %.4f, want 25.0", res.Metrics["target_weight"])
	}
	needs := res.Records["rebalance_needs"]
	if len(needs) != 4 {
		t.Fatalf("expected all 4 positions flagged, got %d", len(needs))
	}
	// Sorted by absolute drift: AAA (+35) first.
	if needs[0].Security != "AAA" {
		t.Errorf("largest drift should be AAA, got %s", needs[0].Security)
	}
	if math.Abs(needs[0].CurrentWeight-60.0) > 1e-9 || math.Abs(needs[0].WeightDiff-35.0) > 1e-9 {
		t.Errorf("AAA weight/diff = %.2f/%.2f, want 60/35", needs[0].CurrentWeight, needs[0].WeightDiff)
	}
	if res.Recommendations[1] != "- AAA: 60.00% (decrease by 35.00%)" {
		t.Errorf("unexpected AAA recommendation: %q", res.Recommendations[1])
	}
	// Underweight positions get increase recommendations.
	foundIncrease := false
	for _, line := range res.Recommendations {
		if line == "- CCC: 10.00% (increase by 15.00%)" {
			foundIncrease = true
		}
	}
	if !foundIncrease {
		t.Errorf("missing CCC increase recommendation in %v", res.Recommendations)
	}
}

func TestRebalancingBalancedPortfolioIsQuiet(t *testing.T) {
	positions := []model.AggregatedPosition{
		posWithValue("AAA", 250),
		posWithValue("BBB", 250),
		posWithValue("CCC", 250),
		posWithValue("DDD", 250),
	}
	res := NewRebalancingStrategy().Analyze(positions)
	if math.Abs(res.Metrics["target_weight"]-25.0) > 1e-9 {
		t.Errorf("target_weight = %.4f, want 25.0", res.Metrics["target_weight"])
	}
	if len(res.Recommendations) != 0 {
		t.Errorf("expected empty recommendation list, got %v", res.Recommendations)
	}
	if len(res.Records["rebalance_needs"]) != 0 {
		t.Errorf("expected no rebalance needs, got %+v", res.Records["rebalance_needs"])
	}
}

func TestRebalancingSmallDriftBelowThreshold(t *testing.T) {
	positions := []model.AggregatedPosition{
		posWithValue("AAA", 510),
		posWithValue("BBB", 490),
	}
	res := NewRebalancingStrategy().Analyze(positions)
	// Weights 51/49, drift 1% each: below the 2% threshold.
	if len(res.Recommendations) != 0 {
		t.Errorf("expected no recommendations for 1%% drift, got %v", res.Recommendations)
	}
}

func TestRebalancingEmptyAndZeroValue(t *testing.T) {
	for name, positions := range map[string][]model.AggregatedPosition{
		"empty":      nil,
		"zero value": {posWithValue("AAA", 0), posWithValue("BBB", 0)},
	} {
		res := NewRebalancingStrategy().Analyze(positions)
		if len(res.Recommendations) != 0 {
			t.Errorf("%s: expected neutral result, got %v", name, res.Recommendations)
		}
		if _, ok := res.Metrics["target_weight"]; ok {
			t.Errorf("%s: target_weight must not be computed", name)
		}
	}
}

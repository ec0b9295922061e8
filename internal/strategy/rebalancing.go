package strategy

import (
	"fmt"
	"math"
	"sort"

	"PortfolioLens/internal/metrics"
	"PortfolioLens/internal/model"
)

// rebalanceThreshold is the minimum absolute weight deviation, in percentage
// points, before a position is flagged for rebalancing.
const rebalanceThreshold = 2.0

// RebalancingStrategy compares each position's weight against an equal-weight
// target and flags the positions that drifted past the threshold.
type RebalancingStrategy struct{}

func NewRebalancingStrategy() *RebalancingStrategy { return &RebalancingStrategy{} }

func (r *RebalancingStrategy) Name() string { return "Rebalancing Strategy" }

func (r *RebalancingStrategy) Description() string {
	return "Suggests portfolio rebalancing to maintain equal weights"
}

func (r *RebalancingStrategy) Analyze(positions []model.AggregatedPosition) *model.StrategyResult {
	result := &model.StrategyResult{
		Metrics: map[string]float64{},
		Records: map[string][]model.PositionRecord{},
	}
	if len(positions) == 0 {
		result.Summary = "No positions to rebalance"
		return result
	}
	var totalValue float64
	for _, p := range positions {
		totalValue += p.MarketValue
	}
	if totalValue == 0 {
		result.Summary = "No positions to rebalance"
		return result
	}

	targetWeight := metrics.Round2(100 / float64(len(positions)))
	result.Summary = fmt.Sprintf("Target weight per position: %.2f%%", targetWeight)
	result.Metrics["target_weight"] = targetWeight

	records := make([]model.PositionRecord, len(positions))
	for i, p := range positions {
		current := metrics.Round2(p.MarketValue / totalValue * 100)
		records[i] = model.PositionRecord{
			Security:      p.Security,
			CurrentWeight: current,
			WeightDiff:    current - targetWeight,
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return math.Abs(records[i].WeightDiff) > math.Abs(records[j].WeightDiff)
	})

	var needs []model.PositionRecord
	for _, rec := range records {
		if math.Abs(rec.WeightDiff) > rebalanceThreshold {
			needs = append(needs, rec)
		}
	}
	if len(needs) == 0 {
		return result
	}

	result.Records["rebalance_needs"] = needs
	result.Recommendations = append(result.Recommendations, "Positions requiring rebalancing:")
	for _, rec := range needs {
		direction := "decrease"
		if rec.WeightDiff < 0 {
			direction = "increase"
		}
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("- %s: %.2f%% (%s by %.2f%%)", rec.Security, rec.CurrentWeight, direction, math.Abs(rec.WeightDiff)))
	}
	return result
}

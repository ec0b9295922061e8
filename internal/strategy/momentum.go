package strategy

import (
	"fmt"
	"sort"

	"PortfolioLens/internal/metrics"
	"PortfolioLens/internal/model"
)

// MomentumStrategy ranks positions by return and recommends adding to the top
// performers and trimming the bottom ones.
type MomentumStrategy struct{}

func NewMomentumStrategy() *MomentumStrategy { return &MomentumStrategy{} }

func (m *MomentumStrategy) Name() string { return "Momentum Strategy" }

func (m *MomentumStrategy) Description() string {
	return "Identifies top and bottom performers based on returns"
}

// Analyze sorts positions descending by return and picks the first 2 and last
// 2 of the sorted slice. With fewer than 4 rankable positions the two picks
// can overlap; that mirrors the head/tail selection this rule has always used.
// Positions with an undefined return (zero cost basis) are excluded from the
// ranking and the average instead of being sorted by a garbage value.
func (m *MomentumStrategy) Analyze(positions []model.AggregatedPosition) *model.StrategyResult {
	ranked := make([]model.AggregatedPosition, 0, len(positions))
	for _, p := range positions {
		if p.ReturnValid {
			ranked = append(ranked, p)
		}
	}
	result := &model.StrategyResult{
		Metrics: map[string]float64{},
		Records: map[string][]model.PositionRecord{},
	}
	if len(ranked) == 0 {
		result.Summary = "No positions with computable returns"
		return result
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ReturnPct > ranked[j].ReturnPct })

	top := ranked[:min(2, len(ranked))]
	bottom := ranked[max(0, len(ranked)-2):]

	var avg float64
	for _, p := range ranked {
		avg += p.ReturnPct
	}
	avg /= float64(len(ranked))

	result.Summary = fmt.Sprintf("Average portfolio return: %.2f%%", avg)
	result.Metrics["avg_return"] = avg

	result.Recommendations = append(result.Recommendations, "Consider increasing positions in top performers:")
	for _, p := range top {
		result.Recommendations = append(result.Recommendations, fmt.Sprintf("- %s (%.2f%%)", p.Security, p.ReturnPct))
		result.Records["top_performers"] = append(result.Records["top_performers"], model.PositionRecord{
			Security:  p.Security,
			ReturnPct: metrics.Round2(p.ReturnPct),
		})
	}
	result.Recommendations = append(result.Recommendations, "Consider reducing exposure to underperformers:")
	for _, p := range bottom {
		result.Recommendations = append(result.Recommendations, fmt.Sprintf("- %s (%.2f%%)", p.Security, p.ReturnPct))
		result.Records["bottom_performers"] = append(result.Records["bottom_performers"], model.PositionRecord{
			Security:  p.Security,
			ReturnPct: metrics.Round2(p.ReturnPct),
		})
	}
	return result
}

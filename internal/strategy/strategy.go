package strategy

import "PortfolioLens/internal/model"

// Strategy is an analysis rule over aggregated positions. Analyze is a pure
// function of its input snapshot: no state is retained between calls, and an
// empty position set yields a neutral result rather than an error.
type Strategy interface {
	Name() string
	Description() string
	Analyze(positions []model.AggregatedPosition) *model.StrategyResult
}

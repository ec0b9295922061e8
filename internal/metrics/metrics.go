package metrics

import (
	"errors"
	"math"

	"PortfolioLens/internal/model"
)

// ErrDivisionUndefined is returned when a ratio is requested over a zero
// denominator (zero cost basis or zero position count).
var ErrDivisionUndefined = errors.New("division undefined: zero denominator")

// CostBasis is the total amount paid for a lot.
func CostBasis(quantity int, purchasePrice float64) float64 {
	return float64(quantity) * purchasePrice
}

// MarketValue is the current worth of a lot.
func MarketValue(quantity int, currentPrice float64) float64 {
	return float64(quantity) * currentPrice
}

// GainLoss is the unrealized profit or loss.
func GainLoss(marketValue, costBasis float64) float64 {
	return marketValue - costBasis
}

// ReturnPct is the percentage gain or loss relative to cost basis.
// Fails with ErrDivisionUndefined when costBasis is zero; callers must flag
// the row rather than feed a NaN into sorts or recommendations.
func ReturnPct(gainLoss, costBasis float64) (float64, error) {
	if costBasis == 0 {
		return 0, ErrDivisionUndefined
	}
	return gainLoss / costBasis * 100, nil
}

// Round2 rounds to 2 decimal places for display. Full precision is retained
// everywhere else.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize folds priced lots into a PortfolioSummary. An empty row set yields
// zero totals, not an error.
func Summarize(portfolio string, rows []model.PricedLot) model.PortfolioSummary {
	sum := model.PortfolioSummary{Portfolio: portfolio}
	securities := make(map[string]struct{})
	for _, r := range rows {
		sum.TotalValue += r.MarketValue
		sum.TotalCost += r.CostBasis
		sum.TotalGainLoss += r.GainLoss
		securities[r.Security] = struct{}{}
	}
	sum.Holdings = len(securities)
	if pct, err := ReturnPct(sum.TotalGainLoss, sum.TotalCost); err == nil {
		sum.TotalReturnPct = Round2(pct)
		sum.ReturnValid = true
	}
	return sum
}

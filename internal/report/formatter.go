package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"PortfolioLens/internal/model"
)

// FormatPortfolioReport formats a portfolio's summary and positions into a
// plain-text report.
func FormatPortfolioReport(summary model.PortfolioSummary, positions []model.AggregatedPosition) string {
	var b strings.Builder

	name := summary.Portfolio
	if name == "" {
		name = "All Portfolios"
	}
	b.WriteString(fmt.Sprintf("Portfolio Report: %s | %s\n\n", name, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Total value:     %.2f\n", summary.TotalValue))
	b.WriteString(fmt.Sprintf("Total cost:      %.2f\n", summary.TotalCost))
	b.WriteString(fmt.Sprintf("Total gain/loss: %+.2f\n", summary.TotalGainLoss))
	if summary.ReturnValid {
		b.WriteString(fmt.Sprintf("Total return:    %+.2f%%\n", summary.TotalReturnPct))
	} else {
		b.WriteString("Total return:    n/a\n")
	}
	b.WriteString(fmt.Sprintf("Holdings:        %d\n\n", summary.Holdings))

	if len(positions) > 0 {
		b.WriteString("Positions:\n")
		for _, p := range positions {
			ret := "n/a"
			if p.ReturnValid {
				ret = fmt.Sprintf("%+.2f%%", p.ReturnPct)
			}
			b.WriteString(fmt.Sprintf("  %-6s %-14s qty %5d  avg %8.2f  now %8.2f  value %10.2f  %s\n",
				p.Security, p.Sector, p.Quantity, p.AverageCost, p.CurrentPrice, p.MarketValue, ret))
		}
	}

	return b.String()
}

// FormatSectorAllocation formats the sector → market value map, largest first.
func FormatSectorAllocation(alloc map[string]float64) string {
	type row struct {
		sector string
		value  float64
	}
	rows := make([]row, 0, len(alloc))
	var total float64
	for sector, value := range alloc {
		rows = append(rows, row{sector, value})
		total += value
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].value != rows[j].value {
			return rows[i].value > rows[j].value
		}
		return rows[i].sector < rows[j].sector
	})

	var b strings.Builder
	b.WriteString("Sector allocation:\n")
	for _, r := range rows {
		pct := 0.0
		if total > 0 {
			pct = r.value / total * 100
		}
		b.WriteString(fmt.Sprintf("  %-14s %10.2f (%5.1f%%)\n", r.sector, r.value, pct))
	}
	return b.String()
}

// FormatStrategyResult formats one strategy's output.
func FormatStrategyResult(name string, res *model.StrategyResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", name))
	b.WriteString(fmt.Sprintf("  %s\n", res.Summary))
	if len(res.Recommendations) == 0 {
		b.WriteString("  No recommendations.\n")
		return b.String()
	}
	for _, rec := range res.Recommendations {
		b.WriteString(fmt.Sprintf("  %s\n", rec))
	}
	return b.String()
}

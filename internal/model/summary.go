package model

// PortfolioSummary holds totals over a filtered lot set. Portfolio is empty
// when the summary spans all portfolios. ReturnValid is false when the total
// cost is zero and the overall return is undefined.
type PortfolioSummary struct {
	Portfolio      string
	TotalValue     float64
	TotalCost      float64
	TotalGainLoss  float64
	TotalReturnPct float64
	ReturnValid    bool
	Holdings       int // distinct securities
}

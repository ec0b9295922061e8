package holdings

import (
	"time"

	"PortfolioLens/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("bad sample date: " + s)
	}
	return t
}

// SampleLots returns the built-in holdings dataset: three portfolios with six
// purchase lots each, including a dollar-cost-averaged AAPL position.
func SampleLots() []model.Lot {
	return []model.Lot{
		// Growth
		{Portfolio: "Growth", Security: "AAPL", PurchaseDate: date("2023-01-15"), Quantity: 50, PurchasePrice: 150.2, Sector: "Technology"},
		{Portfolio: "Growth", Security: "AAPL", PurchaseDate: date("2023-06-20"), Quantity: 50, PurchasePrice: 175.5, Sector: "Technology"},
		{Portfolio: "Growth", Security: "GOOGL", PurchaseDate: date("2023-03-10"), Quantity: 50, PurchasePrice: 250.5, Sector: "Technology"},
		{Portfolio: "Growth", Security: "META", PurchaseDate: date("2023-07-12"), Quantity: 40, PurchasePrice: 320.7, Sector: "Technology"},
		{Portfolio: "Growth", Security: "NVDA", PurchaseDate: date("2023-02-25"), Quantity: 75, PurchasePrice: 180.3, Sector: "Technology"},
		{Portfolio: "Growth", Security: "NFLX", PurchaseDate: date("2023-04-18"), Quantity: 30, PurchasePrice: 450.6, Sector: "Entertainment"},

		// Income
		{Portfolio: "Income", Security: "MSFT", PurchaseDate: date("2023-02-01"), Quantity: 50, PurchasePrice: 100.2, Sector: "Technology"},
		{Portfolio: "Income", Security: "JNJ", PurchaseDate: date("2023-05-20"), Quantity: 100, PurchasePrice: 175.8, Sector: "Healthcare"},
		{Portfolio: "Income", Security: "PEP", PurchaseDate: date("2023-09-15"), Quantity: 80, PurchasePrice: 160.4, Sector: "Consumer"},
		{Portfolio: "Income", Security: "PG", PurchaseDate: date("2023-08-12"), Quantity: 60, PurchasePrice: 143.2, Sector: "Consumer"},
		{Portfolio: "Income", Security: "T", PurchaseDate: date("2023-06-05"), Quantity: 200, PurchasePrice: 27.5, Sector: "Telecom"},
		{Portfolio: "Income", Security: "VZ", PurchaseDate: date("2023-03-22"), Quantity: 120, PurchasePrice: 35.1, Sector: "Telecom"},

		// Speculative
		{Portfolio: "Speculative", Security: "TSLA", PurchaseDate: date("2023-04-01"), Quantity: 150, PurchasePrice: 150.5, Sector: "Automotive"},
		{Portfolio: "Speculative", Security: "AMZN", PurchaseDate: date("2023-05-15"), Quantity: 25, PurchasePrice: 500.8, Sector: "Consumer"},
		{Portfolio: "Speculative", Security: "RIVN", PurchaseDate: date("2023-07-01"), Quantity: 60, PurchasePrice: 70.2, Sector: "Automotive"},
		{Portfolio: "Speculative", Security: "SPCE", PurchaseDate: date("2023-09-07"), Quantity: 500, PurchasePrice: 6.5, Sector: "Aerospace"},
		{Portfolio: "Speculative", Security: "PLTR", PurchaseDate: date("2023-10-02"), Quantity: 300, PurchasePrice: 22.3, Sector: "Technology"},
		{Portfolio: "Speculative", Security: "BYND", PurchaseDate: date("2023-08-11"), Quantity: 80, PurchasePrice: 105.5, Sector: "Consumer"},
	}
}

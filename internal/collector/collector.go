package collector

import (
	"fmt"
	"log"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Prices map[string]float64
	Fail   map[string]bool // tickers whose fetch should error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuote(ticker string) (float64, error) {
	if m.Fail[ticker] {
		return 0, fmt.Errorf("mock failure for %s", ticker)
	}
	price, ok := m.Prices[ticker]
	if !ok {
		return 0, fmt.Errorf("mock: no price for %s", ticker)
	}
	return price, nil
}

// PriceCollector fetches current prices for a set of tickers. A failed fetch
// for one ticker never aborts the others: the ticker falls back to its sample
// price (or zero) and the refresh continues.
type PriceCollector struct {
	Fetcher  Fetcher
	Fallback map[string]float64
}

// NewPriceCollector creates a collector with the built-in fallback price table.
func NewPriceCollector(fetcher Fetcher) *PriceCollector {
	return &PriceCollector{Fetcher: fetcher, Fallback: SamplePrices()}
}

// Collect fetches a price per ticker and returns the resulting map along with
// the number of tickers that fell back.
func (c *PriceCollector) Collect(tickers []string) (prices map[string]float64, fallbacks int) {
	prices = make(map[string]float64, len(tickers))
	for _, ticker := range tickers {
		price, err := c.Fetcher.FetchQuote(ticker)
		if err != nil {
			fallback := c.Fallback[ticker]
			log.Printf("[WARN] fetch %s failed: %v, using fallback price %.2f", ticker, err, fallback)
			prices[ticker] = fallback
			fallbacks++
			continue
		}
		prices[ticker] = price
	}
	return prices, fallbacks
}

package collector

import "testing"

func TestCollectUsesFetchedPrices(t *testing.T) {
	fetcher := &MockFetcher{Prices: map[string]float64{"AAPL": 195.3, "TSLA": 240.1}}
	c := NewPriceCollector(fetcher)
	prices, fallbacks := c.Collect([]string{"AAPL", "TSLA"})
	if fallbacks != 0 {
		t.Errorf("expected no fallbacks, got %d", fallbacks)
	}
	if prices["AAPL"] != 195.3 || prices["TSLA"] != 240.1 {
		t.Errorf("unexpected prices: %v", prices)
	}
}

// A failed fetch for one ticker must not abort the others.
func TestCollectIsolatesFailures(t *testing.T) {
	fetcher := &MockFetcher{
		Prices: map[string]float64{"AAPL": 195.3},
		Fail:   map[string]bool{"TSLA": true},
	}
	c := NewPriceCollector(fetcher)
	prices, fallbacks := c.Collect([]string{"AAPL", "TSLA", "XYZ"})
	if fallbacks != 2 {
		t.Errorf("expected 2 fallbacks, got %d", fallbacks)
	}
	if prices["AAPL"] != 195.3 {
		t.Errorf("AAPL = %.2f, want fetched 195.3", prices["AAPL"])
	}
	if prices["TSLA"] != 850.2 {
		t.Errorf("TSLA = %.2f, want fallback 850.2", prices["TSLA"])
	}
	if prices["XYZ"] != 0 {
		t.Errorf("XYZ = %.2f, want 0 for unknown ticker", prices["XYZ"])
	}
}

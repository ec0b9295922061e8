package collector

// SamplePrices returns the static fallback price table used when a live quote
// is unavailable. Tickers not listed fall back to zero.
func SamplePrices() map[string]float64 {
	return map[string]float64{
		"AAPL":  180.5,
		"GOOGL": 2750.2,
		"MSFT":  335.8,
		"AMZN":  3300.5,
		"TSLA":  850.2,
	}
}

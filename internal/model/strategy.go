package model

// PositionRecord is one row in a strategy's tabular metrics. Momentum fills
// Security and ReturnPct; rebalancing fills Security, CurrentWeight and
// WeightDiff.
type PositionRecord struct {
	Security      string
	ReturnPct     float64
	CurrentWeight float64
	WeightDiff    float64
}

// StrategyResult is the output of a single strategy run. It is produced fresh
// on every invocation; strategies keep no state between calls.
type StrategyResult struct {
	Summary         string
	Recommendations []string
	Metrics         map[string]float64
	Records         map[string][]PositionRecord
}

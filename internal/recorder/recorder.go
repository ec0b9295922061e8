package recorder

// RefreshEvent records one price refresh cycle.
type RefreshEvent struct {
	Source    string
	Tickers   int
	Fallbacks int
}

// SummarySnapshot holds one portfolio's totals after a refresh.
type SummarySnapshot struct {
	Portfolio      string // empty for the all-portfolio row
	TotalValue     float64
	TotalCost      float64
	TotalGainLoss  float64
	TotalReturnPct float64
	ReturnValid    bool
	Holdings       int
}

// StrategyRun records one strategy invocation.
type StrategyRun struct {
	StrategyID      string
	Portfolio       string
	Summary         string
	Recommendations int
}

// Recorder persists analytics history for later inspection.
type Recorder interface {
	RecordRefresh(evt *RefreshEvent) error
	RecordSummary(snap *SummarySnapshot) error
	RecordStrategyRun(run *StrategyRun) error
	Close() error
}

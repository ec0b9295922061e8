package scheduler

import (
	"context"
	"fmt"
	"log"

	"PortfolioLens/internal/collector"
	"PortfolioLens/internal/holdings"
	"PortfolioLens/internal/recorder"
	"PortfolioLens/internal/report"
	"PortfolioLens/internal/strategy"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Store     *holdings.Store
	Collector *collector.PriceCollector
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, store *holdings.Store, col *collector.PriceCollector, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Store:     store,
		Collector: col,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the price refresh and report tasks.
func (s *Scheduler) RegisterAll(refreshCron, reportCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
	s.reportTask()
}

// refreshTask fetches current prices and swaps them into the store as one
// atomic update, then records per-portfolio summary snapshots.
func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running price refresh")
	tickers := s.Store.Tickers()
	prices, fallbacks := s.Collector.Collect(tickers)
	s.Store.SetPrices(prices)
	log.Printf("[INFO] refreshed %d tickers (%d fallbacks)", len(tickers), fallbacks)

	if err := s.Recorder.RecordRefresh(&recorder.RefreshEvent{
		Source:    s.Collector.Fetcher.Name(),
		Tickers:   len(tickers),
		Fallbacks: fallbacks,
	}); err != nil {
		log.Printf("[ERROR] record refresh: %v", err)
	}

	for _, portfolio := range append(s.Store.ListPortfolios(), "") {
		sum := s.Store.PortfolioSummary(portfolio)
		if err := s.Recorder.RecordSummary(&recorder.SummarySnapshot{
			Portfolio:      portfolio,
			TotalValue:     sum.TotalValue,
			TotalCost:      sum.TotalCost,
			TotalGainLoss:  sum.TotalGainLoss,
			TotalReturnPct: sum.TotalReturnPct,
			ReturnValid:    sum.ReturnValid,
			Holdings:       sum.Holdings,
		}); err != nil {
			log.Printf("[ERROR] record summary for %q: %v", portfolio, err)
		}
	}
}

// reportTask renders a full report per portfolio and runs every registered
// strategy against it.
func (s *Scheduler) reportTask() {
	log.Println("[INFO] running portfolio report")
	for _, portfolio := range s.Store.ListPortfolios() {
		summary := s.Store.PortfolioSummary(portfolio)
		positions := s.Store.AggregatedPositions(portfolio)

		out := report.FormatPortfolioReport(summary, positions)
		out += "\n" + report.FormatSectorAllocation(s.Store.SectorAllocation(portfolio))

		for _, desc := range strategy.Available() {
			st, err := strategy.Create(desc.ID)
			if err != nil {
				log.Printf("[ERROR] create strategy %q: %v", desc.ID, err)
				continue
			}
			res := st.Analyze(positions)
			out += "\n" + report.FormatStrategyResult(st.Name(), res)

			if err := s.Recorder.RecordStrategyRun(&recorder.StrategyRun{
				StrategyID:      desc.ID,
				Portfolio:       portfolio,
				Summary:         res.Summary,
				Recommendations: len(res.Recommendations),
			}); err != nil {
				log.Printf("[ERROR] record strategy run %q: %v", desc.ID, err)
			}
		}

		log.Printf("[INFO] report for %s:\n%s", portfolio, out)
	}
}

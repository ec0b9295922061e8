package holdings

import (
	"fmt"
	"sort"
	"sync"

	"PortfolioLens/internal/metrics"
	"PortfolioLens/internal/model"
)

// Store holds the raw lots and the derived views. Prices are replaced and
// derived tables recomputed as one atomic unit under the mutex, so readers
// never observe partially-updated metrics.
type Store struct {
	mu     sync.Mutex
	lots   []model.Lot
	prices map[string]float64
	priced []model.PricedLot
	agg    []model.AggregatedPosition
}

// NewStore validates the lots and builds a store with all prices at zero.
// Validation failure is fatal for the whole load and names the offending lot.
func NewStore(lots []model.Lot) (*Store, error) {
	if err := validateLots(lots); err != nil {
		return nil, err
	}
	s := &Store{
		lots:   lots,
		prices: make(map[string]float64),
	}
	s.recompute()
	return s, nil
}

func validateLots(lots []model.Lot) error {
	for i, l := range lots {
		if l.Portfolio == "" {
			return fmt.Errorf("lot %d (%s): portfolio is required", i, l.Security)
		}
		if l.Security == "" {
			return fmt.Errorf("lot %d (portfolio %s): security is required", i, l.Portfolio)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("lot %d (%s/%s): quantity must be positive, got %d", i, l.Portfolio, l.Security, l.Quantity)
		}
		if l.PurchasePrice <= 0 {
			return fmt.Errorf("lot %d (%s/%s): purchase price must be positive, got %.4f", i, l.Portfolio, l.Security, l.PurchasePrice)
		}
	}
	return nil
}

// SetPrices replaces current prices for all tickers present in the map and
// recomputes every derived row. Tickers missing from the map keep their
// previous price; a ticker never priced stays at zero.
func (s *Store) SetPrices(prices map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ticker, price := range prices {
		s.prices[ticker] = price
	}
	s.recompute()
}

// Tickers returns the distinct securities across all lots, sorted.
func (s *Store) Tickers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var tickers []string
	for _, l := range s.lots {
		if _, ok := seen[l.Security]; !ok {
			seen[l.Security] = struct{}{}
			tickers = append(tickers, l.Security)
		}
	}
	sort.Strings(tickers)
	return tickers
}

// ListPortfolios returns the distinct portfolio names in lexicographic order.
func (s *Store) ListPortfolios() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var names []string
	for _, l := range s.lots {
		if _, ok := seen[l.Portfolio]; !ok {
			seen[l.Portfolio] = struct{}{}
			names = append(names, l.Portfolio)
		}
	}
	sort.Strings(names)
	return names
}

// LotDetail returns per-lot rows, filtered to the given portfolio when
// non-empty.
func (s *Store) LotDetail(portfolio string) []model.PricedLot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []model.PricedLot
	for _, r := range s.priced {
		if portfolio == "" || r.Portfolio == portfolio {
			rows = append(rows, r)
		}
	}
	return rows
}

// AggregatedPositions returns one row per (portfolio, security) group, filtered
// to the given portfolio when non-empty. A security is grouped under its
// first-seen sector within a portfolio; assigning one security different
// sectors across lots is an input-data contract violation, not reconciled here.
func (s *Store) AggregatedPositions(portfolio string) []model.AggregatedPosition {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []model.AggregatedPosition
	for _, p := range s.agg {
		if portfolio == "" || p.Portfolio == portfolio {
			rows = append(rows, p)
		}
	}
	return rows
}

// PortfolioSummary returns totals over the filtered lot set.
func (s *Store) PortfolioSummary(portfolio string) model.PortfolioSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []model.PricedLot
	for _, r := range s.priced {
		if portfolio == "" || r.Portfolio == portfolio {
			rows = append(rows, r)
		}
	}
	return metrics.Summarize(portfolio, rows)
}

// SectorAllocation returns sector → summed market value over aggregated
// positions. Aggregated rows are used instead of raw lots so securities with
// many small lots are not over-weighted.
func (s *Store) SectorAllocation(portfolio string) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	alloc := make(map[string]float64)
	for _, p := range s.agg {
		if portfolio == "" || p.Portfolio == portfolio {
			alloc[p.Sector] += p.MarketValue
		}
	}
	return alloc
}

// SectorPerformance returns sector → mean return over aggregated positions.
// Positions with an undefined return are excluded from the mean; a sector with
// no computable returns is omitted from the result.
func (s *Store) SectorPerformance(portfolio string) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range s.agg {
		if portfolio != "" && p.Portfolio != portfolio {
			continue
		}
		if !p.ReturnValid {
			continue
		}
		sums[p.Sector] += p.ReturnPct
		counts[p.Sector]++
	}
	perf := make(map[string]float64, len(sums))
	for sector, sum := range sums {
		perf[sector] = metrics.Round2(sum / float64(counts[sector]))
	}
	return perf
}

type groupKey struct {
	portfolio string
	security  string
}

// recompute rebuilds the priced-lot table and the aggregated-position table
// from the raw lots and the current price map. Caller must hold s.mu.
func (s *Store) recompute() {
	s.priced = make([]model.PricedLot, len(s.lots))
	for i, l := range s.lots {
		price := s.prices[l.Security]
		row := model.PricedLot{
			Lot:          l,
			CurrentPrice: price,
			CostBasis:    metrics.CostBasis(l.Quantity, l.PurchasePrice),
			MarketValue:  metrics.MarketValue(l.Quantity, price),
		}
		row.GainLoss = metrics.GainLoss(row.MarketValue, row.CostBasis)
		if pct, err := metrics.ReturnPct(row.GainLoss, row.CostBasis); err == nil {
			row.ReturnPct = metrics.Round2(pct)
			row.ReturnValid = true
		}
		s.priced[i] = row
	}

	// Grouped fold over (portfolio, security). Sector is taken from the
	// first-seen lot; the price from the lot with the latest purchase date
	// (ties broken by input order).
	groups := make(map[groupKey]*model.AggregatedPosition)
	lastDate := make(map[groupKey]int) // index into s.priced of the "last" lot
	var order []groupKey
	for i, r := range s.priced {
		key := groupKey{r.Portfolio, r.Security}
		pos, ok := groups[key]
		if !ok {
			pos = &model.AggregatedPosition{
				Portfolio: r.Portfolio,
				Security:  r.Security,
				Sector:    r.Sector,
			}
			groups[key] = pos
			order = append(order, key)
			lastDate[key] = i
		} else if !s.priced[i].PurchaseDate.Before(s.priced[lastDate[key]].PurchaseDate) {
			lastDate[key] = i
		}
		pos.Quantity += r.Quantity
		pos.CostBasis += r.CostBasis
		pos.MarketValue += r.MarketValue
		pos.GainLoss += r.GainLoss
	}

	s.agg = make([]model.AggregatedPosition, 0, len(order))
	for _, key := range order {
		pos := groups[key]
		pos.CurrentPrice = s.priced[lastDate[key]].CurrentPrice
		if pos.Quantity > 0 {
			pos.AverageCost = metrics.Round2(pos.CostBasis / float64(pos.Quantity))
		}
		if pct, err := metrics.ReturnPct(pos.GainLoss, pos.CostBasis); err == nil {
			pos.ReturnPct = metrics.Round2(pct)
			pos.ReturnValid = true
		}
		s.agg = append(s.agg, *pos)
	}
	sort.SliceStable(s.agg, func(i, j int) bool {
		if s.agg[i].Portfolio != s.agg[j].Portfolio {
			return s.agg[i].Portfolio < s.agg[j].Portfolio
		}
		return s.agg[i].Security < s.agg[j].Security
	})
}

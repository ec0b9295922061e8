package model

import "time"

// Lot is a single purchase event for a security within a portfolio.
// Multiple lots per security are expected (dollar-cost averaging).
type Lot struct {
	Portfolio     string
	Security      string
	PurchaseDate  time.Time
	Quantity      int
	PurchasePrice float64
	Sector        string
}

// PricedLot is a Lot with the current price attached and per-lot metrics computed.
// ReturnValid is false when the cost basis is zero and the return is undefined.
type PricedLot struct {
	Lot
	CurrentPrice float64
	CostBasis    float64
	MarketValue  float64
	GainLoss     float64
	ReturnPct    float64
	ReturnValid  bool
}

// AggregatedPosition is the combined holding of one security within one
// portfolio across all its lots. CurrentPrice is the price attached to the
// chronologically last lot in the group, not an average.
type AggregatedPosition struct {
	Portfolio    string
	Security     string
	Sector       string
	Quantity     int
	CostBasis    float64
	MarketValue  float64
	GainLoss     float64
	CurrentPrice float64
	AverageCost  float64
	ReturnPct    float64
	ReturnValid  bool
}

package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AllSectors is the sector filter value meaning "no sector filter".
const AllSectors = "All"

// Sectors offered by the explore view. The service accepts other values too.
var Sectors = []string{AllSectors, "Technology", "Financials", "Healthcare", "Consumer Discretionary", "Utilities", "Industrials"}

// RankedMover is one row of a server-ranked gainers or losers list.
type RankedMover struct {
	Ticker         string
	PercentChange  decimal.Decimal
	CurrentPrice   decimal.Decimal
	PredictedPrice decimal.Decimal
	Sector         string           // optional
	Volatility     *decimal.Decimal // optional
}

// ExploreFilters selects which ranking the service computes.
type ExploreFilters struct {
	Days   int
	Model  ModelKind // optional
	Sector string    // optional; "" or AllSectors means unfiltered
}

// DefaultExploreFilters are applied when an explore view first opens.
func DefaultExploreFilters() ExploreFilters {
	return ExploreFilters{Days: 30, Model: DefaultModel, Sector: AllSectors}
}

// SectorFilter returns the sector to send to the service, or "" for none.
func (f ExploreFilters) SectorFilter() string {
	s := strings.TrimSpace(f.Sector)
	if strings.EqualFold(s, AllSectors) {
		return ""
	}
	return s
}

// ExploreResult combines both server-ranked lists, order preserved.
type ExploreResult struct {
	Gainers []RankedMover
	Losers  []RankedMover
}

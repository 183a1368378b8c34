// Package viewmodel derives display rows from dashboard state. Everything
// here is a pure function of its inputs.
package viewmodel

import (
	"github.com/shopspring/decimal"

	"stock_dashboard/internal/feature/forecast/domain/entity"
)

// Bias is the styling hint for a signed change.
type Bias string

const (
	BiasGain    Bias = "gain"
	BiasLoss    Bias = "loss"
	BiasNeutral Bias = "neutral"
)

// BiasOf returns the bias for d. Exactly zero is neutral.
func BiasOf(d decimal.Decimal) Bias {
	switch d.Sign() {
	case 1:
		return BiasGain
	case -1:
		return BiasLoss
	default:
		return BiasNeutral
	}
}

// MoverRow is one display row of a gainers or losers list.
type MoverRow struct {
	Ticker         string `json:"ticker"`
	PercentChange  string `json:"percent_change"`
	Bias           Bias   `json:"bias"`
	CurrentPrice   string `json:"current_price"`
	PredictedPrice string `json:"predicted_price"`
	Sector         string `json:"sector,omitempty"`
	Volatility     string `json:"volatility,omitempty"`
}

// Ranking holds both lists in the order the service returned them.
type Ranking struct {
	Gainers []MoverRow `json:"gainers"`
	Losers  []MoverRow `json:"losers"`
}

// Rank reshapes server-ranked movers into display rows. Order is preserved and
// no row is dropped, whatever its sign or list.
func Rank(gainers, losers []entity.RankedMover) Ranking {
	return Ranking{Gainers: moverRows(gainers), Losers: moverRows(losers)}
}

func moverRows(in []entity.RankedMover) []MoverRow {
	out := make([]MoverRow, len(in))
	for i, m := range in {
		row := MoverRow{
			Ticker:         m.Ticker,
			PercentChange:  FormatPercent(m.PercentChange),
			Bias:           BiasOf(m.PercentChange),
			CurrentPrice:   FormatPrice(m.CurrentPrice),
			PredictedPrice: FormatPrice(m.PredictedPrice),
			Sector:         m.Sector,
		}
		if m.Volatility != nil {
			row.Volatility = m.Volatility.StringFixed(2)
		}
		out[i] = row
	}
	return out
}

// FormatPercent renders a percentage with an explicit sign: +5.00%, -3.00%, 0.00%.
func FormatPercent(d decimal.Decimal) string {
	s := d.StringFixed(2) + "%"
	if d.Sign() > 0 {
		return "+" + s
	}
	return s
}

// FormatPrice renders a price as $X.XX.
func FormatPrice(d decimal.Decimal) string {
	if d.Sign() < 0 {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

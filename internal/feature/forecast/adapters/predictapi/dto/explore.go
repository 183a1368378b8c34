package dto

import "github.com/shopspring/decimal"

// Mover is one element of GET /explore/top-gainers and /explore/top-losers.
type Mover struct {
	Ticker         string           `json:"ticker" validate:"required"`
	PercentChange  *decimal.Decimal `json:"percent_change"`
	ForecastPct    *decimal.Decimal `json:"forecast_pct_change"` // older servers
	CurrentPrice   decimal.Decimal  `json:"current_price"`
	PredictedPrice decimal.Decimal  `json:"predicted_price"`
	Sector         string           `json:"sector,omitempty"`
	Volatility     *decimal.Decimal `json:"volatility,omitempty"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastPoint is the predicted price DaysAhead days after the last close.
type ForecastPoint struct {
	DaysAhead int
	Date      time.Time
	Price     decimal.Decimal
}

// Forecast is ordered by DaysAhead ascending with at most one point per horizon.
type Forecast []ForecastPoint

// At returns the point for the given horizon.
func (f Forecast) At(days int) (ForecastPoint, bool) {
	for _, p := range f {
		if p.DaysAhead == days {
			return p, true
		}
	}
	return ForecastPoint{}, false
}

// ForecastResult is the payload of one /predict call.
type ForecastResult struct {
	Forecast Forecast
	// Accuracy is in [0,1] and scoped to the (ticker, model) pair it was requested for.
	Accuracy decimal.Decimal
}

// MetricValue is either numeric or free text. Exactly one is set.
type MetricValue struct {
	Number *decimal.Decimal
	Text   string
}

// String renders the value for display.
func (v MetricValue) String() string {
	if v.Number != nil {
		return v.Number.String()
	}
	return v.Text
}

// MetricSet maps an opaque metric name to its value.
type MetricSet map[string]MetricValue

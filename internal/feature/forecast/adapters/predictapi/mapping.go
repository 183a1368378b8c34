package predictapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"stock_dashboard/internal/feature/forecast/adapters/predictapi/dto"
	"stock_dashboard/internal/feature/forecast/domain/entity"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// toForecast orders points by horizon and rejects duplicate horizons.
func toForecast(points []dto.PredictionPoint) (entity.Forecast, error) {
	out := make(entity.Forecast, 0, len(points))
	for _, p := range points {
		d, err := parseDate(p.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.ForecastPoint{DaysAhead: p.Days, Date: d, Price: p.Price})
	}
	slices.SortStableFunc(out, func(a, b entity.ForecastPoint) int { return a.DaysAhead - b.DaysAhead })
	for i := 1; i < len(out); i++ {
		if out[i].DaysAhead == out[i-1].DaysAhead {
			return nil, fmt.Errorf("duplicate horizon %d", out[i].DaysAhead)
		}
	}
	return out, nil
}

// toMetricValue keeps JSON strings as text and numbers as decimals. Any other
// JSON value is kept as its raw text.
func toMetricValue(raw json.RawMessage) (entity.MetricValue, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return entity.MetricValue{}, errors.New("empty value")
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return entity.MetricValue{}, err
		}
		return entity.MetricValue{Text: s}, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		d, err := decimal.NewFromString(string(raw))
		if err != nil {
			return entity.MetricValue{}, err
		}
		return entity.MetricValue{Number: &d}, nil
	case 'n':
		return entity.MetricValue{Text: "N/A"}, nil
	default:
		return entity.MetricValue{Text: string(raw)}, nil
	}
}

func toComparisonRow(model entity.ModelKind, e dto.ComparisonEntry) entity.ComparisonRow {
	if e.Error != "" {
		return entity.ComparisonRow{Model: model, Error: e.Error}
	}
	if e.NextPrediction == nil {
		return entity.ComparisonRow{Model: model, Error: "missing prediction"}
	}
	row := entity.ComparisonRow{Model: model, NextPrediction: *e.NextPrediction}
	if e.Accuracy != nil {
		row.Accuracy = *e.Accuracy
	}
	return row
}

// toMovers keeps the server's order.
func toMovers(in []dto.Mover) ([]entity.RankedMover, error) {
	out := make([]entity.RankedMover, 0, len(in))
	for _, m := range in {
		pct := m.PercentChange
		if pct == nil {
			pct = m.ForecastPct
		}
		if pct == nil {
			return nil, fmt.Errorf("mover %q: missing percent_change", m.Ticker)
		}
		out = append(out, entity.RankedMover{
			Ticker:         m.Ticker,
			PercentChange:  *pct,
			CurrentPrice:   m.CurrentPrice,
			PredictedPrice: m.PredictedPrice,
			Sector:         m.Sector,
			Volatility:     m.Volatility,
		})
	}
	return out, nil
}

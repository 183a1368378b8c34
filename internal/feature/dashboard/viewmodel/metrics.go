package viewmodel

import (
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"stock_dashboard/internal/feature/forecast/domain/entity"
)

var metricLabels = map[string]string{
	"pe_ratio":   "P/E Ratio",
	"eps":        "EPS",
	"volume":     "Volume",
	"market_cap": "Market Cap",
	"ticker":     "Ticker",
}

// MetricRow is one labeled metric.
type MetricRow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// MetricLabel returns the display label for a metric key. Unknown snake_case
// keys are title-cased word by word.
func MetricLabel(key string) string {
	if l, ok := metricLabels[key]; ok {
		return l
	}
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == ' ' || r == '-' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// MetricRows labels every metric, sorted by key.
func MetricRows(m entity.MetricSet) []MetricRow {
	keys := slices.Sorted(maps.Keys(m))
	out := make([]MetricRow, len(keys))
	for i, k := range keys {
		out[i] = MetricRow{Key: k, Label: MetricLabel(k), Value: m[k].String()}
	}
	return out
}

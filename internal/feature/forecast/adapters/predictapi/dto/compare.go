package dto

import "github.com/shopspring/decimal"

// ComparisonEntry is one model's entry in GET /compare/{ticker}.
// Either Error is set, or NextPrediction and Accuracy are.
type ComparisonEntry struct {
	NextPrediction *decimal.Decimal `json:"next_prediction"`
	Accuracy       *decimal.Decimal `json:"accuracy"`
	Error          string           `json:"error"`
}

// ComparisonResponse maps model name to its entry.
type ComparisonResponse map[string]ComparisonEntry

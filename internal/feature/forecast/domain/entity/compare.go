package entity

import "github.com/shopspring/decimal"

// ComparisonRow is one model's result in a comparison. It carries either a
// prediction with accuracy, or an error message, never both.
type ComparisonRow struct {
	Model          ModelKind
	NextPrediction decimal.Decimal
	Accuracy       decimal.Decimal
	Error          string
}

// Failed reports whether this row carries a per-model error.
func (r ComparisonRow) Failed() bool { return r.Error != "" }

// Comparison holds one row per model returned by the service.
type Comparison map[ModelKind]ComparisonRow

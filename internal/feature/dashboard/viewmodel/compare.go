package viewmodel

import (
	"cmp"
	"slices"

	"stock_dashboard/internal/feature/forecast/domain/entity"
)

// ComparisonRowView is one model's line in the comparison table. A failed
// model carries Error and nothing else.
type ComparisonRowView struct {
	Model          string `json:"model"`
	NextPrediction string `json:"next_prediction,omitempty"`
	Accuracy       string `json:"accuracy,omitempty"`
	Error          string `json:"error,omitempty"`
}

// ComparisonRows orders rows by canonical model order, then unknown models
// alphabetically. A per-model error becomes an error row.
func ComparisonRows(c entity.Comparison) []ComparisonRowView {
	rows := make([]entity.ComparisonRow, 0, len(c))
	for model, row := range c {
		row.Model = model
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b entity.ComparisonRow) int {
		return cmp.Or(
			cmp.Compare(a.Model.Order(), b.Model.Order()),
			cmp.Compare(a.Model, b.Model),
		)
	})

	out := make([]ComparisonRowView, len(rows))
	for i, r := range rows {
		if r.Failed() {
			out[i] = ComparisonRowView{Model: string(r.Model), Error: r.Error}
			continue
		}
		out[i] = ComparisonRowView{
			Model:          string(r.Model),
			NextPrediction: FormatPrice(r.NextPrediction),
			Accuracy:       FormatAccuracy(r.Accuracy),
		}
	}
	return out
}

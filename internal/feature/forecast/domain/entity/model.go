// Package entity defines the domain models for the forecast feature.
package entity

import "strings"

// ModelKind identifies a forecasting model offered by the prediction service.
type ModelKind string

const (
	ModelProphet ModelKind = "prophet"
	ModelARIMA   ModelKind = "arima"
	ModelXGBoost ModelKind = "xgboost"
	ModelLSTM    ModelKind = "lstm"
)

// DefaultModel is used until the user picks one.
const DefaultModel = ModelProphet

// Models lists the supported models in canonical display order.
var Models = []ModelKind{ModelProphet, ModelARIMA, ModelXGBoost, ModelLSTM}

// ParseModelKind accepts a model name in any case.
func ParseModelKind(s string) (ModelKind, bool) {
	m := ModelKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Models {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// Order returns the canonical position of m, or len(Models) for names the
// client does not know about.
func (m ModelKind) Order() int {
	for i, known := range Models {
		if m == known {
			return i
		}
	}
	return len(Models)
}

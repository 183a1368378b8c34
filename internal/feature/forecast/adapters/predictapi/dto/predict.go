// Package dto defines data transfer objects for the prediction service API.
package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	Ticker string `json:"ticker"`
	Model  string `json:"model"`
}

// PredictionPoint is one element of PredictResponse.Predictions.
type PredictionPoint struct {
	Days  int             `json:"days" validate:"gt=0"`
	Date  string          `json:"date" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

// PredictResponse is the body returned by POST /predict.
type PredictResponse struct {
	Predictions []PredictionPoint `json:"predictions" validate:"required,min=1,dive"`
	Accuracy    decimal.Decimal   `json:"accuracy" validate:"gte=0,lte=1"`
}

// MetricsResponse is the body returned by GET /metrics: metric name to a
// number, string, or anything else the service chooses to send.
type MetricsResponse map[string]json.RawMessage

// ErrorResponse is the optional body of a non-2xx response. FastAPI sends
// detail as a string for handled errors and as a list for validation errors.
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

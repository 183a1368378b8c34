// Package dto defines data transfer objects for the dashboard HTTP API.
package dto

import "stock_dashboard/internal/feature/dashboard/viewmodel"

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionResponse is returned by POST /sessions.
type SessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
}

// SelectTickerRequest is the body of POST /dashboard/ticker.
type SelectTickerRequest struct {
	Input string `json:"input" binding:"required"`
}

// SelectModelRequest is the body of PUT /dashboard/model.
type SelectModelRequest struct {
	Model string `json:"model" binding:"required"`
}

// CompareRequest is the body of POST /dashboard/compare. Days defaults to 1.
type CompareRequest struct {
	Days int `json:"days" binding:"omitempty,oneof=1 2 7 10 30"`
}

// ExploreRequest is the body of PUT /dashboard/explore.
type ExploreRequest struct {
	Days   int    `json:"days" binding:"required,oneof=1 2 7 10 30 90"`
	Model  string `json:"model"`
	Sector string `json:"sector" binding:"max=64"`
}

// DashboardQuery is the query string of GET /dashboard. Wait, when set,
// holds the response until every request has settled or the wait elapses.
type DashboardQuery struct {
	Wait string `form:"wait"`
}

// ExploreFilters echoes the explore filters.
type ExploreFilters struct {
	Days   int    `json:"days"`
	Model  string `json:"model,omitempty"`
	Sector string `json:"sector"`
}

// Selection is the user's current input.
type Selection struct {
	Ticker      string         `json:"ticker,omitempty"`
	Model       string         `json:"model"`
	CompareDays int            `json:"compare_days"`
	Explore     ExploreFilters `json:"explore"`
}

// Slot is one request slot. Data is present only on success.
type Slot[T any] struct {
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	Generation uint64 `json:"generation"`
	Data       *T     `json:"data,omitempty"`
}

// Forecast is the forecast slot payload.
type Forecast struct {
	Ticker   string                   `json:"ticker"`
	Model    string                   `json:"model"`
	Accuracy viewmodel.Badge          `json:"accuracy"`
	Cards    []viewmodel.ForecastCard `json:"cards"`
}

// Metrics is the metrics slot payload.
type Metrics struct {
	Ticker string                `json:"ticker"`
	Rows   []viewmodel.MetricRow `json:"rows"`
}

// Comparison is the comparison slot payload.
type Comparison struct {
	Ticker string                        `json:"ticker"`
	Days   int                           `json:"days"`
	Rows   []viewmodel.ComparisonRowView `json:"rows"`
}

// Explore is the explore slot payload.
type Explore struct {
	Filters ExploreFilters `json:"filters"`
	viewmodel.Ranking
}

// Options lists the choices the UI offers.
type Options struct {
	Models      []string `json:"models"`
	CompareDays []int    `json:"compare_days"`
	ExploreDays []int    `json:"explore_days"`
	Sectors     []string `json:"sectors"`
}

// DashboardResponse is the full view state returned by every dashboard route.
type DashboardResponse struct {
	Selection  Selection        `json:"selection"`
	Forecast   Slot[Forecast]   `json:"forecast"`
	Metrics    Slot[Metrics]    `json:"metrics"`
	Comparison Slot[Comparison] `json:"comparison"`
	Explore    Slot[Explore]    `json:"explore"`
	Options    Options          `json:"options"`
	// Accepted is false when an action was a no-op, such as compare without a ticker.
	Accepted *bool `json:"accepted,omitempty"`
}

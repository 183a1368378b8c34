// Package dto defines data transfer objects for the ticker HTTP API.
package dto

// CandidatesQuery is the query string of GET /tickers.
type CandidatesQuery struct {
	Q     string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CandidatesResponse lists autocomplete candidates in universe order.
// Match is set when the query itself names a known symbol.
type CandidatesResponse struct {
	Candidates []string `json:"candidates"`
	Match      string   `json:"match,omitempty"`
}

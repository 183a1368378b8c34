// Package predictapi provides a client for the stock prediction service API.
package predictapi

import "time"

// Config holds configuration for the prediction service client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://api.example.com")
	Timeout time.Duration // HTTP request timeout
}

// Package domain defines domain-level errors for the ticker feature.
package domain

import "errors"

// Validation errors. These are resolved locally and never turn into a
// network request.
var (
	// ErrEmptyInput indicates that the user committed blank input.
	ErrEmptyInput = errors.New("ticker input is empty")

	// ErrUnknownTicker indicates that the input is not in the known symbol universe.
	ErrUnknownTicker = errors.New("unknown ticker")
)

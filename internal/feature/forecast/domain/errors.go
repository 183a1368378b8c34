// Package domain defines domain-level errors for the forecast feature.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse indicates a 2xx response whose body could not be
	// parsed into the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidModel indicates a model name outside the supported set.
	ErrInvalidModel = errors.New("invalid model")

	// ErrInvalidDays indicates an unsupported horizon.
	ErrInvalidDays = errors.New("invalid days")
)

// APIError is returned by every Gateway call that fails. Status is the HTTP
// status code, or 0 when the request never produced a response.
type APIError struct {
	Status int
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("predict api: %v", e.Err)
	case e.Detail != "":
		return fmt.Sprintf("predict api http %d: %s", e.Status, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("predict api http %d: %v", e.Status, e.Err)
	default:
		return fmt.Sprintf("predict api http %d", e.Status)
	}
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error { return e.Err }

// Reason turns a gateway error into a message for the user: the server's
// detail when it sent one, otherwise fallback.
func Reason(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

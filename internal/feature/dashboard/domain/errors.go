// Package domain defines domain-level errors for the dashboard feature.
package domain

import "errors"

var (
	// ErrSessionNotFound indicates an unknown or expired dashboard session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoTickerSelected is reported when an action needs a resolved ticker first.
	ErrNoTickerSelected = errors.New("no ticker selected")

	// ErrClosed indicates the controller has been shut down.
	ErrClosed = errors.New("dashboard closed")
)

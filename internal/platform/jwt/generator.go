package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// claimSessionID carries the dashboard session id.
const claimSessionID = "sid"

// Generator defines the interface for session token generation.
type Generator interface {
	// GenerateToken creates a signed token bound to a dashboard session.
	GenerateToken(sessionID string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

var _ Generator = (*generator)(nil)

// GenerateToken creates a signed JWT token with standard claims.
func (g *generator) GenerateToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("empty session id")
	}
	// AuthRequired rejects every token when the secret is empty.
	if len(g.secret) == 0 {
		return "", errors.New("empty signing secret")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		claimSessionID: sessionID,
		"exp":          now.Add(g.expiration).Unix(),
		"iat":          now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

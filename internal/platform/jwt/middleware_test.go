package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func runMiddleware(secret, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	AuthRequired(secret)(c)
	return w, c
}

func signed(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuthRequired_MissingBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, c := runMiddleware(testSecret, tt.authHeader)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestAuthRequired_MissingSecret(t *testing.T) {
	t.Parallel()

	w, _ := runMiddleware("", "Bearer sometoken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	t.Parallel()

	future := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"garbage", func(*testing.T) string { return "not.a.jwt" }},
		{"wrong secret", func(t *testing.T) string {
			return signed(t, jwt.MapClaims{claimSessionID: "s1", "exp": future}, "other-secret")
		}},
		{"expired", func(t *testing.T) string {
			return signed(t, jwt.MapClaims{claimSessionID: "s1", "exp": time.Now().Add(-time.Hour).Unix()}, testSecret)
		}},
		{"missing session id", func(t *testing.T) string {
			return signed(t, jwt.MapClaims{"exp": future}, testSecret)
		}},
		{"non-string session id", func(t *testing.T) string {
			return signed(t, jwt.MapClaims{claimSessionID: 42, "exp": future}, testSecret)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, c := runMiddleware(testSecret, "Bearer "+tt.token(t))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestAuthRequired_ValidToken(t *testing.T) {
	t.Parallel()

	tok, err := NewGenerator(testSecret, time.Hour).GenerateToken("session-123")
	require.NoError(t, err)

	w, c := runMiddleware(testSecret, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())
	assert.Equal(t, "session-123", c.GetString(ContextSessionID))
}

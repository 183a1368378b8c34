// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stats reports counters worth exposing on /healthz.
type Stats interface {
	Symbols() int
	ActiveSessions() int
}

// Health returns the /healthz handler. Responses are never cached.
// GET reports the loaded symbol count and live dashboard sessions.
func Health(stats Stats) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			body := gin.H{"status": "ok"}
			if stats != nil {
				body["symbols"] = stats.Symbols()
				body["sessions"] = stats.ActiveSessions()
			}
			c.JSON(http.StatusOK, body)
		}
	}
}

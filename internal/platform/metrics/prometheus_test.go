package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	t.Parallel()

	r := New()
	r.ObserveRequest("predict", "ok", 120*time.Millisecond)
	r.ObserveRequest("predict", "ok", 80*time.Millisecond)
	r.ObserveRequest("metrics", "error", time.Second)
	r.ObserveStale("forecast")
	r.SetSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requestsTotal.WithLabelValues("predict", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requestsTotal.WithLabelValues("metrics", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.staleTotal.WithLabelValues("forecast")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.sessions))
}

func TestRecorder_Handler(t *testing.T) {
	t.Parallel()

	r := New()
	r.ObserveStale("explore")

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `dashboard_stale_responses_total{slot="explore"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

// Package metrics exposes dashboard counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder records gateway calls and stale discards on its own registry.
type Recorder struct {
	registry       *prometheus.Registry
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	staleTotal     *prometheus.CounterVec
	sessions       prometheus.Gauge
}

// New creates a Recorder with Go runtime and process collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_gateway_requests_total",
				Help: "Requests sent to the prediction service",
			},
			[]string{"endpoint", "outcome"},
		),
		requestLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_gateway_request_duration_seconds",
				Help:    "Latency of prediction service requests",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
			},
			[]string{"endpoint"},
		),
		staleTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_stale_responses_total",
				Help: "Responses discarded because a newer request superseded them",
			},
			[]string{"slot"},
		),
		sessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_active_sessions",
			Help: "Live dashboard sessions",
		}),
	}
}

// ObserveRequest records one prediction service call.
func (r *Recorder) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	r.requestsTotal.WithLabelValues(endpoint, outcome).Inc()
	r.requestLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveStale records a discarded response for slot.
func (r *Recorder) ObserveStale(slot string) {
	r.staleTotal.WithLabelValues(slot).Inc()
}

// SetSessions reports the number of live sessions.
func (r *Recorder) SetSessions(n int) {
	r.sessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

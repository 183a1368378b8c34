// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/feature/dashboard/usecase"
	"stock_dashboard/internal/feature/forecast/adapters/predictapi"
	infrahttp "stock_dashboard/internal/platform/http"
	"stock_dashboard/internal/platform/metrics"
	"stock_dashboard/internal/shared/ratelimiter"
)

var _ usecase.Gateway = (*predictapi.Client)(nil)

// NewGateway creates a fully configured prediction service client with a
// shared rate limiter and metrics.
func NewGateway(cfg config.Config, log *slog.Logger, rec *metrics.Recorder) *predictapi.Client {
	apiCfg := predictapi.Config{BaseURL: cfg.PredictAPIBaseURL, Timeout: cfg.PredictAPITimeout}
	httpClient := infrahttp.NewHTTPClient(apiCfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(cfg.RatePerSecond, cfg.RateBurst, log)
	return predictapi.NewClient(apiCfg, httpClient,
		predictapi.WithLimiter(limiter),
		predictapi.WithRecorder(rec),
		predictapi.WithLogger(log.With("component", "predictapi")),
	)
}

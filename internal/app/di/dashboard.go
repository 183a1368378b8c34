package di

import (
	"log/slog"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/feature/dashboard/usecase"
	"stock_dashboard/internal/platform/metrics"
)

// NewSessions creates the session registry. Every session gets its own
// Controller sharing gw.
func NewSessions(cfg config.Config, gw usecase.Gateway, log *slog.Logger, rec *metrics.Recorder) *usecase.Sessions {
	ctrlLog := log.With("component", "dashboard")
	newController := func() *usecase.Controller {
		return usecase.NewController(gw,
			usecase.WithLogger(ctrlLog),
			usecase.WithRequestTimeout(cfg.PredictAPITimeout),
			usecase.WithExploreDebounce(cfg.ExploreDebounce),
			usecase.WithStaleRecorder(rec),
		)
	}
	return usecase.NewSessions(newController, cfg.SessionTTL, log, rec)
}

// HealthStats exposes resolver and session counts to the health handler.
type HealthStats struct {
	Resolver interface{ Size() int }
	Sessions *usecase.Sessions
}

func (h HealthStats) Symbols() int        { return h.Resolver.Size() }
func (h HealthStats) ActiveSessions() int { return h.Sessions.ActiveSessions() }

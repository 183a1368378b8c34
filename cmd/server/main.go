package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/app/router"
	dashboardhandler "stock_dashboard/internal/feature/dashboard/transport/handler"
	tickerhandler "stock_dashboard/internal/feature/ticker/transport/handler"
	jwtmw "stock_dashboard/internal/platform/jwt"
	"stock_dashboard/internal/platform/logger"
	"stock_dashboard/internal/platform/metrics"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Symbol universe, loaded once.
	repo, closeRepo, err := di.NewSymbolRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	resolver, err := di.NewResolver(ctx, repo)
	closeRepo()
	if err != nil {
		return err
	}
	log.Info("symbol universe loaded", "source", cfg.SymbolSource, "symbols", resolver.Size())

	rec := metrics.New()
	gw := di.NewGateway(cfg, log, rec)

	sessions := di.NewSessions(cfg, gw, log, rec)
	defer sessions.Close()
	go sessions.Run(ctx, time.Minute)

	r := router.NewRouter(router.Deps{
		Dashboard:     dashboardhandler.NewDashboardHandler(sessions, resolver, jwtmw.NewGenerator(cfg.SessionSecret, cfg.SessionTTL), log),
		Tickers:       tickerhandler.NewTickerHandler(resolver),
		Health:        di.HealthStats{Resolver: resolver, Sessions: sessions},
		Metrics:       rec.Handler(),
		SessionSecret: cfg.SessionSecret,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.ServerAddr, "predict_api", cfg.PredictAPIBaseURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

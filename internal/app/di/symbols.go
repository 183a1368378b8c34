package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/feature/ticker/adapters"
	"stock_dashboard/internal/feature/ticker/usecase"
	"stock_dashboard/internal/platform/db"
	infraredis "stock_dashboard/internal/platform/redis"
)

// NewSymbolRepository selects the symbol universe source named by
// cfg.SymbolSource. The returned cleanup releases any connection it opened.
func NewSymbolRepository(ctx context.Context, cfg config.Config, log *slog.Logger) (usecase.SymbolRepository, func(), error) {
	noop := func() {}

	switch cfg.SymbolSource {
	case config.SymbolSourceDB:
		gdb, err := db.OpenDB(ctx, db.Config{
			Driver:         cfg.DatabaseDriver,
			DSN:            cfg.DatabaseDSN,
			ConnectTimeout: 60 * time.Second,
			Migrate:        []any{&adapters.SymbolModel{}},
		}, log)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return adapters.NewSymbolRepository(gdb), cleanup, nil

	case config.SymbolSourceRedis:
		rdb, err := infraredis.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close Redis client", "error", err)
			}
		}
		return adapters.NewSymbolRedis(rdb, cfg.SymbolRedisKey), cleanup, nil

	case config.SymbolSourceEmbedded, "":
		return adapters.NewEmbeddedSymbols(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown symbol source %q", cfg.SymbolSource)
	}
}

// NewResolver loads the universe once and returns a Resolver over it.
func NewResolver(ctx context.Context, repo usecase.SymbolRepository) (*usecase.Resolver, error) {
	u, err := usecase.LoadUniverse(ctx, repo)
	if err != nil {
		return nil, err
	}
	if u.Len() == 0 {
		return nil, fmt.Errorf("symbol universe is empty")
	}
	return usecase.NewResolver(u), nil
}

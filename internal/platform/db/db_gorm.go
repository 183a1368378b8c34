// Package db opens the gorm connection backing the database symbol source.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config describes how to reach the database.
type Config struct {
	Driver string
	DSN    string
	// ConnectTimeout bounds the retry loop in OpenDB. Zero means a single attempt.
	ConnectTimeout time.Duration
	// RetryInterval is the pause between attempts.
	RetryInterval time.Duration
	// Migrate lists models to auto-migrate after connecting.
	Migrate []any
}

// Dialector maps a driver name to its gorm dialector.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite, "":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// OpenDB connects, retrying until cfg.ConnectTimeout elapses, then runs migrations.
func OpenDB(ctx context.Context, cfg Config, log *slog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 3 * time.Second
	}

	deadline := time.Now().Add(cfg.ConnectTimeout)
	var db *gorm.DB
	for {
		db, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
		}
		log.Warn("DB connect failed, retrying", "driver", cfg.Driver, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}

	if len(cfg.Migrate) > 0 {
		if err := db.WithContext(ctx).AutoMigrate(cfg.Migrate...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}

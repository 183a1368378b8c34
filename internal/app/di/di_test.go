package di

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/feature/ticker/domain/entity"
	"stock_dashboard/internal/platform/metrics"
)

func TestNewSymbolRepository_Embedded(t *testing.T) {
	t.Parallel()

	repo, cleanup, err := NewSymbolRepository(context.Background(), config.Config{SymbolSource: config.SymbolSourceEmbedded}, slog.Default())
	require.NoError(t, err)
	defer cleanup()

	r, err := NewResolver(context.Background(), repo)
	require.NoError(t, err)
	assert.Positive(t, r.Size())

	sym, err := r.Resolve("aapl")
	require.NoError(t, err)
	assert.Equal(t, entity.Symbol("AAPL"), sym)
}

func TestNewSymbolRepository_SQLite(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		SymbolSource:   config.SymbolSourceDB,
		DatabaseDriver: "sqlite",
		DatabaseDSN:    "file:" + t.TempDir() + "/symbols.db",
	}
	repo, cleanup, err := NewSymbolRepository(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer cleanup()

	codes, err := repo.ListActiveCodes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, codes, "fresh table after migration")

	_, err = NewResolver(context.Background(), repo)
	assert.ErrorContains(t, err, "empty")
}

func TestNewSymbolRepository_Unknown(t *testing.T) {
	t.Parallel()

	_, cleanup, err := NewSymbolRepository(context.Background(), config.Config{SymbolSource: "s3"}, slog.Default())
	defer cleanup()
	assert.Error(t, err)
}

func TestNewSessions(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		PredictAPIBaseURL: "http://localhost:1",
		PredictAPITimeout: time.Second,
		RatePerSecond:     10,
		RateBurst:         5,
		SessionTTL:        time.Hour,
	}
	rec := metrics.New()
	gw := NewGateway(cfg, slog.Default(), rec)
	sessions := NewSessions(cfg, gw, slog.Default(), rec)
	t.Cleanup(sessions.Close)

	id, ctrl := sessions.Create()
	got, err := sessions.Get(id)
	require.NoError(t, err)
	assert.Same(t, ctrl, got)
	assert.Equal(t, 1, HealthStats{Resolver: fixedSize(3), Sessions: sessions}.ActiveSessions())
	assert.Equal(t, 3, HealthStats{Resolver: fixedSize(3), Sessions: sessions}.Symbols())
}

type fixedSize int

func (f fixedSize) Size() int { return int(f) }

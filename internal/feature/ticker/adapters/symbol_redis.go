package adapters

import (
	"context"
	"fmt"

	"stock_dashboard/internal/feature/ticker/usecase"

	"github.com/redis/go-redis/v9"
)

// symbolRedis reads the symbol universe from a Redis list.
// List order is universe order.
type symbolRedis struct {
	client *redis.Client
	key    string
}

var _ usecase.SymbolRepository = (*symbolRedis)(nil)

// NewSymbolRedis creates a Redis-backed SymbolRepository reading the list at key.
// If key is empty, it uses "symbols:sp500".
func NewSymbolRedis(client *redis.Client, key string) *symbolRedis {
	if key == "" {
		key = "symbols:sp500"
	}
	return &symbolRedis{client: client, key: key}
}

// ListActiveCodes returns every element of the list.
func (r *symbolRedis) ListActiveCodes(ctx context.Context) ([]string, error) {
	codes, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", r.key, err)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("symbol list %s is empty", r.key)
	}
	return codes, nil
}

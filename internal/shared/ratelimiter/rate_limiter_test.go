package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_BurstPassesImmediately(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 3, nil)
	start := time.Now()
	for range 3 {
		require.NoError(t, rl.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRateLimiter_WaitHonorsContext(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.1, 1, nil)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := rl.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_Unlimited(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, 0, nil)
	for range 100 {
		require.NoError(t, rl.Wait(context.Background()))
	}
}

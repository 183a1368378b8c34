// Package ratelimiter throttles outbound calls to the prediction service.
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface limits how often an operation such as an API call may run.
type RateLimiterInterface interface {
	Wait(ctx context.Context) error
}

// RateLimiter is a token bucket shared by every dashboard session.
type RateLimiter struct {
	limiter *rate.Limiter
	log     *slog.Logger
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter allows perSecond calls per second with bursts of up to burst.
// A non-positive perSecond disables limiting.
func NewRateLimiter(perSecond float64, burst int, log *slog.Logger) *RateLimiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, burst), log: log}
}

// Wait blocks until a call may proceed or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	r := rl.limiter.Reserve()
	if !r.OK() {
		return rl.limiter.Wait(ctx)
	}
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	rl.log.Debug("rate limit hit, waiting", "delay", delay)
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

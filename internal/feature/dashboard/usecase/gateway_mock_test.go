package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/forecast/domain/entity"
)

const waitTimeout = 2 * time.Second

type reply struct {
	forecast   entity.ForecastResult
	metrics    entity.MetricSet
	comparison entity.Comparison
	explore    entity.ExploreResult
	err        error
}

// pendingCall is one gateway call parked until the test answers it.
type pendingCall struct {
	kind    string
	ticker  string
	model   entity.ModelKind
	days    int
	filters entity.ExploreFilters
	replyCh chan reply
}

func (p *pendingCall) respond(r reply) { p.replyCh <- r }

// mockGateway hands every call to the test through calls and blocks until
// the test responds, so responses can be released in any order.
type mockGateway struct {
	calls chan *pendingCall
}

func newMockGateway() *mockGateway {
	return &mockGateway{calls: make(chan *pendingCall, 32)}
}

func (m *mockGateway) park(ctx context.Context, p *pendingCall) (reply, error) {
	p.replyCh = make(chan reply, 1)
	m.calls <- p
	select {
	case r := <-p.replyCh:
		return r, r.err
	case <-ctx.Done():
		return reply{}, ctx.Err()
	}
}

func (m *mockGateway) FetchForecast(ctx context.Context, ticker string, model entity.ModelKind) (entity.ForecastResult, error) {
	r, err := m.park(ctx, &pendingCall{kind: SlotForecast, ticker: ticker, model: model})
	return r.forecast, err
}

func (m *mockGateway) FetchMetrics(ctx context.Context, ticker string) (entity.MetricSet, error) {
	r, err := m.park(ctx, &pendingCall{kind: SlotMetrics, ticker: ticker})
	return r.metrics, err
}

func (m *mockGateway) FetchComparison(ctx context.Context, ticker string, days int) (entity.Comparison, error) {
	r, err := m.park(ctx, &pendingCall{kind: SlotComparison, ticker: ticker, days: days})
	return r.comparison, err
}

func (m *mockGateway) FetchExplore(ctx context.Context, f entity.ExploreFilters) (entity.ExploreResult, error) {
	r, err := m.park(ctx, &pendingCall{kind: SlotExplore, filters: f})
	return r.explore, err
}

// next returns the next call, failing the test if it is not of kind.
func (m *mockGateway) next(t *testing.T, kind string) *pendingCall {
	t.Helper()
	select {
	case p := <-m.calls:
		require.Equal(t, kind, p.kind, "unexpected gateway call")
		return p
	case <-time.After(waitTimeout):
		t.Fatalf("timed out waiting for %s call", kind)
		return nil
	}
}

func (m *mockGateway) expectNoCall(t *testing.T, within time.Duration) {
	t.Helper()
	select {
	case p := <-m.calls:
		t.Fatalf("unexpected %s call for %q", p.kind, p.ticker)
	case <-time.After(within):
	}
}

// staleSpy records discarded responses and signals each one.
type staleSpy struct {
	mu     sync.Mutex
	counts map[string]int
	ch     chan string
}

func newStaleSpy() *staleSpy {
	return &staleSpy{counts: map[string]int{}, ch: make(chan string, 32)}
}

func (s *staleSpy) ObserveStale(slot string) {
	s.mu.Lock()
	s.counts[slot]++
	s.mu.Unlock()
	s.ch <- slot
}

func (s *staleSpy) wait(t *testing.T, slot string) {
	t.Helper()
	select {
	case got := <-s.ch:
		require.Equal(t, slot, got)
	case <-time.After(waitTimeout):
		t.Fatalf("timed out waiting for stale %s response", slot)
	}
}

func (s *staleSpy) count(slot string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[slot]
}

func forecastReply(accuracy string, price string) reply {
	return reply{forecast: entity.ForecastResult{
		Forecast: entity.Forecast{{
			DaysAhead: 1,
			Date:      time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
			Price:     decimal.RequireFromString(price),
		}},
		Accuracy: decimal.RequireFromString(accuracy),
	}}
}

func settled(t *testing.T, c *Controller) Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	s, err := c.Settled(ctx)
	require.NoError(t, err)
	return s
}

// Package usecase orchestrates the dashboard's asynchronous requests.
//
// A Controller owns four slots (forecast, metrics, comparison, explore). Each
// user action issues fresh gateway calls under a new slot generation; a
// response is applied only if its generation is still current when it
// arrives. Superseded calls are not aborted, their results are dropped.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"stock_dashboard/internal/feature/dashboard/domain"
	forecastdomain "stock_dashboard/internal/feature/forecast/domain"
	"stock_dashboard/internal/feature/forecast/domain/entity"
	tickerentity "stock_dashboard/internal/feature/ticker/domain/entity"
)

// Gateway is the prediction service as the controller sees it.
type Gateway interface {
	FetchForecast(ctx context.Context, ticker string, model entity.ModelKind) (entity.ForecastResult, error)
	FetchMetrics(ctx context.Context, ticker string) (entity.MetricSet, error)
	FetchComparison(ctx context.Context, ticker string, days int) (entity.Comparison, error)
	FetchExplore(ctx context.Context, filters entity.ExploreFilters) (entity.ExploreResult, error)
}

// StaleRecorder is told about every discarded response.
type StaleRecorder interface {
	ObserveStale(slot string)
}

const (
	SlotForecast   = "forecast"
	SlotMetrics    = "metrics"
	SlotComparison = "comparison"
	SlotExplore    = "explore"
)

// Messages shown when the service gives no detail.
const (
	ReasonForecast   = "Failed to fetch data."
	ReasonMetrics    = "Failed to fetch metrics."
	ReasonComparison = "Failed to compare models."
	ReasonExplore    = "Failed to load explore data."
)

// Selection is the user's current choice of inputs.
type Selection struct {
	Ticker      tickerentity.Symbol
	Model       entity.ModelKind
	CompareDays int
	Explore     entity.ExploreFilters
}

// ForecastData is the forecast slot payload, tagged with the inputs it was requested for.
type ForecastData struct {
	Ticker tickerentity.Symbol
	Model  entity.ModelKind
	Result entity.ForecastResult
}

// MetricsData is the metrics slot payload.
type MetricsData struct {
	Ticker  tickerentity.Symbol
	Metrics entity.MetricSet
}

// ComparisonData is the comparison slot payload.
type ComparisonData struct {
	Ticker tickerentity.Symbol
	Days   int
	Rows   entity.Comparison
}

// ExploreData is the explore slot payload.
type ExploreData struct {
	Filters entity.ExploreFilters
	Result  entity.ExploreResult
}

// Snapshot is a consistent copy of the controller's public state.
type Snapshot struct {
	Selection  Selection
	Forecast   RequestState[ForecastData]
	Metrics    RequestState[MetricsData]
	Comparison RequestState[ComparisonData]
	Explore    RequestState[ExploreData]
}

// Controller is the per-session request state machine. It is safe for
// concurrent use; all transitions happen under one lock.
type Controller struct {
	gw       Gateway
	log      *slog.Logger
	stale    StaleRecorder
	timeout  time.Duration
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	closed     bool
	sel        Selection
	forecast   slot[ForecastData]
	metrics    slot[MetricsData]
	comparison slot[ComparisonData]
	explore    slot[ExploreData]

	// metricsPending is set by a ticker change and cleared once a current
	// forecast response issues the metrics call.
	metricsPending bool

	// exploreSeq identifies the most recently armed debounce timer.
	exploreSeq   uint64
	exploreTimer *time.Timer
	exploreDue   bool

	changed chan struct{}
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithRequestTimeout bounds each gateway call. Zero means no bound beyond Close.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithExploreDebounce delays explore requests until filters stop changing for d.
func WithExploreDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

// WithStaleRecorder reports discarded responses to r.
func WithStaleRecorder(r StaleRecorder) Option {
	return func(c *Controller) { c.stale = r }
}

// NewController creates a Controller with default model and explore filters
// selected and every slot Idle.
func NewController(gw Gateway, opts ...Option) *Controller {
	c := &Controller{
		gw:  gw,
		log: slog.Default(),
		sel: Selection{
			Model:       entity.DefaultModel,
			CompareDays: entity.DefaultCompareDays,
			Explore:     entity.DefaultExploreFilters(),
		},
		forecast:   newSlot[ForecastData](SlotForecast, ReasonForecast),
		metrics:    newSlot[MetricsData](SlotMetrics, ReasonMetrics),
		comparison: newSlot[ComparisonData](SlotComparison, ReasonComparison),
		explore:    newSlot[ExploreData](SlotExplore, ReasonExplore),
		changed:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c
}

// SelectTicker makes sym the current ticker and issues its forecast. Metrics
// follow once that forecast settles. Any comparison for the previous ticker
// is cleared. Selecting the same ticker again re-issues the forecast.
func (c *Controller) SelectTicker(sym tickerentity.Symbol) error {
	if sym.IsZero() {
		return domain.ErrNoTickerSelected
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrClosed
	}

	c.sel.Ticker = sym
	c.metrics.reset()
	c.comparison.reset()
	c.metricsPending = true
	c.issueForecastLocked()
	c.broadcastLocked()
	return nil
}

// SelectModel re-issues the forecast for the current ticker under model.
// Metrics, comparison and explore are left alone. Without a ticker only the
// selection changes.
func (c *Controller) SelectModel(model entity.ModelKind) error {
	m, ok := entity.ParseModelKind(string(model))
	if !ok {
		return fmt.Errorf("%w: %q", forecastdomain.ErrInvalidModel, model)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrClosed
	}

	c.sel.Model = m
	if c.sel.Ticker.IsZero() {
		return nil
	}
	c.issueForecastLocked()
	c.broadcastLocked()
	return nil
}

// Compare issues a model comparison for the current ticker over days. It
// reports false, doing nothing, when no ticker has been selected.
func (c *Controller) Compare(days int) (bool, error) {
	if !entity.ValidCompareDays(days) {
		return false, fmt.Errorf("%w: %d", forecastdomain.ErrInvalidDays, days)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false, domain.ErrClosed
	}
	if c.sel.Ticker.IsZero() {
		return false, nil
	}

	c.sel.CompareDays = days
	gen := c.comparison.issue()
	ticker := c.sel.Ticker
	c.spawnLocked(func() { c.runComparison(gen, ticker, days) })
	c.broadcastLocked()
	return true, nil
}

// SetExploreFilters updates the explore filters and schedules a request.
// Rapid changes collapse into one request for the last combination. Setting
// the filters already shown is a no-op.
func (c *Controller) SetExploreFilters(f entity.ExploreFilters) error {
	if !entity.ValidExploreDays(f.Days) {
		return fmt.Errorf("%w: %d", forecastdomain.ErrInvalidDays, f.Days)
	}
	if f.Model != "" {
		m, ok := entity.ParseModelKind(string(f.Model))
		if !ok {
			return fmt.Errorf("%w: %q", forecastdomain.ErrInvalidModel, f.Model)
		}
		f.Model = m
	}
	if f.SectorFilter() == "" {
		f.Sector = entity.AllSectors
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrClosed
	}
	if f == c.sel.Explore && c.explore.state.Status != StatusIdle && !c.exploreDue {
		return nil
	}

	c.sel.Explore = f
	if c.debounce <= 0 {
		c.issueExploreLocked()
		c.broadcastLocked()
		return nil
	}

	c.exploreSeq++
	seq := c.exploreSeq
	if c.exploreTimer != nil {
		c.exploreTimer.Stop()
	}
	c.exploreDue = true
	c.exploreTimer = time.AfterFunc(c.debounce, func() { c.fireExplore(seq) })
	c.broadcastLocked()
	return nil
}

// RefreshExplore issues an explore request for the current filters now,
// superseding any pending debounce.
func (c *Controller) RefreshExplore() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrClosed
	}
	c.issueExploreLocked()
	c.broadcastLocked()
	return nil
}

// Snapshot returns the current state of every slot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Settled blocks until no slot is loading and no explore request is pending,
// then returns that snapshot.
func (c *Controller) Settled(ctx context.Context) (Snapshot, error) {
	for {
		c.mu.Lock()
		if c.settledLocked() {
			s := c.snapshotLocked()
			c.mu.Unlock()
			return s, nil
		}
		ch := c.changed
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return c.Snapshot(), ctx.Err()
		}
	}
}

// Close cancels in-flight calls and waits for their goroutines to finish.
// Later actions return domain.ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.exploreTimer != nil {
		c.exploreTimer.Stop()
	}
	c.exploreDue = false
	c.broadcastLocked()
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller) issueForecastLocked() {
	gen := c.forecast.issue()
	ticker, model := c.sel.Ticker, c.sel.Model
	c.spawnLocked(func() { c.runForecast(gen, ticker, model) })
}

func (c *Controller) issueExploreLocked() {
	c.exploreSeq++
	if c.exploreTimer != nil {
		c.exploreTimer.Stop()
	}
	c.exploreDue = false
	gen := c.explore.issue()
	filters := c.sel.Explore
	c.spawnLocked(func() { c.runExplore(gen, filters) })
}

func (c *Controller) fireExplore(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.exploreSeq {
		return
	}
	c.issueExploreLocked()
	c.broadcastLocked()
}

func (c *Controller) runForecast(gen uint64, ticker tickerentity.Symbol, model entity.ModelKind) {
	ctx, cancel := c.requestContext()
	defer cancel()
	res, err := c.gw.FetchForecast(ctx, ticker.String(), model)

	c.mu.Lock()
	defer c.mu.Unlock()
	data := ForecastData{Ticker: ticker, Model: model, Result: res}
	if !c.forecast.settle(gen, data, err) {
		c.discardLocked(SlotForecast, gen, c.forecast.state.Generation)
		return
	}
	if err != nil {
		c.log.Warn("forecast failed", "ticker", ticker, "model", model, "error", err)
	}

	// Metrics are issued only after a current forecast has settled, whatever its outcome.
	if c.metricsPending && !c.closed {
		c.metricsPending = false
		mgen := c.metrics.issue()
		c.spawnLocked(func() { c.runMetrics(mgen, ticker) })
	}
	c.broadcastLocked()
}

func (c *Controller) runMetrics(gen uint64, ticker tickerentity.Symbol) {
	ctx, cancel := c.requestContext()
	defer cancel()
	res, err := c.gw.FetchMetrics(ctx, ticker.String())

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.metrics.settle(gen, MetricsData{Ticker: ticker, Metrics: res}, err) {
		c.discardLocked(SlotMetrics, gen, c.metrics.state.Generation)
		return
	}
	if err != nil {
		c.log.Warn("metrics failed", "ticker", ticker, "error", err)
	}
	c.broadcastLocked()
}

func (c *Controller) runComparison(gen uint64, ticker tickerentity.Symbol, days int) {
	ctx, cancel := c.requestContext()
	defer cancel()
	rows, err := c.gw.FetchComparison(ctx, ticker.String(), days)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.comparison.settle(gen, ComparisonData{Ticker: ticker, Days: days, Rows: rows}, err) {
		c.discardLocked(SlotComparison, gen, c.comparison.state.Generation)
		return
	}
	if err != nil {
		c.log.Warn("comparison failed", "ticker", ticker, "days", days, "error", err)
	}
	c.broadcastLocked()
}

func (c *Controller) runExplore(gen uint64, filters entity.ExploreFilters) {
	ctx, cancel := c.requestContext()
	defer cancel()
	res, err := c.gw.FetchExplore(ctx, filters)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.explore.settle(gen, ExploreData{Filters: filters, Result: res}, err) {
		c.discardLocked(SlotExplore, gen, c.explore.state.Generation)
		return
	}
	if err != nil {
		c.log.Warn("explore failed", "days", filters.Days, "model", filters.Model, "sector", filters.Sector, "error", err)
	}
	c.broadcastLocked()
}

func (c *Controller) requestContext() (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(c.ctx, c.timeout)
	}
	return context.WithCancel(c.ctx)
}

func (c *Controller) spawnLocked(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}

func (c *Controller) discardLocked(slot string, gen, current uint64) {
	c.log.Debug("discarded stale response", "slot", slot, "generation", gen, "current", current)
	if c.stale != nil {
		c.stale.ObserveStale(slot)
	}
}

// broadcastLocked wakes every Settled waiter.
func (c *Controller) broadcastLocked() {
	close(c.changed)
	c.changed = make(chan struct{})
}

func (c *Controller) settledLocked() bool {
	return !c.forecast.loading() &&
		!c.metrics.loading() &&
		!c.comparison.loading() &&
		!c.explore.loading() &&
		!c.exploreDue
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Selection:  c.sel,
		Forecast:   c.forecast.state,
		Metrics:    c.metrics.state,
		Comparison: c.comparison.state,
		Explore:    c.explore.state,
	}
}

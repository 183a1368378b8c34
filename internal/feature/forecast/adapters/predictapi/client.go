package predictapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"stock_dashboard/internal/feature/forecast/adapters/predictapi/dto"
	"stock_dashboard/internal/feature/forecast/domain"
	"stock_dashboard/internal/feature/forecast/domain/entity"
)

const (
	endpointPredict = "predict"
	endpointMetrics = "metrics"
	endpointCompare = "compare"
	endpointGainers = "explore_gainers"
	endpointLosers  = "explore_losers"

	// maxErrorBody bounds how much of a failed response is read for its detail.
	maxErrorBody = 64 << 10
)

// Limiter throttles outbound requests.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Recorder observes each request's outcome.
type Recorder interface {
	ObserveRequest(endpoint, outcome string, elapsed time.Duration)
}

// Client is the typed wrapper around the prediction service endpoints.
// Every call issues a fresh request; nothing is de-duplicated or cached.
type Client struct {
	cfg      Config
	client   *http.Client
	limiter  Limiter
	recorder Recorder
	validate *validator.Validate
	log      *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithLimiter throttles requests through l.
func WithLimiter(l Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithRecorder reports request outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a Client for cfg.BaseURL using the given HTTP client.
func NewClient(cfg Config, client *http.Client, opts ...Option) *Client {
	c := &Client{
		cfg:      cfg,
		client:   client,
		validate: newValidator(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cfg.BaseURL = strings.TrimRight(c.cfg.BaseURL, "/")
	return c
}

// newValidator validates decimals by their float value so numeric tags like gte work.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// FetchForecast calls POST /predict.
func (c *Client) FetchForecast(ctx context.Context, ticker string, model entity.ModelKind) (entity.ForecastResult, error) {
	var body dto.PredictResponse
	req := dto.PredictRequest{Ticker: ticker, Model: string(model)}
	status, err := c.do(ctx, endpointPredict, http.MethodPost, "/predict", nil, req, &body)
	if err != nil {
		return entity.ForecastResult{}, err
	}
	if err := c.validate.Struct(body); err != nil {
		return entity.ForecastResult{}, malformed(status, err)
	}

	forecast, err := toForecast(body.Predictions)
	if err != nil {
		return entity.ForecastResult{}, malformed(status, err)
	}
	return entity.ForecastResult{Forecast: forecast, Accuracy: body.Accuracy}, nil
}

// FetchMetrics calls GET /metrics?ticker=.
func (c *Client) FetchMetrics(ctx context.Context, ticker string) (entity.MetricSet, error) {
	var body dto.MetricsResponse
	q := url.Values{}
	q.Set("ticker", ticker)
	status, err := c.do(ctx, endpointMetrics, http.MethodGet, "/metrics", q, nil, &body)
	if err != nil {
		return nil, err
	}

	out := make(entity.MetricSet, len(body))
	for k, raw := range body {
		v, err := toMetricValue(raw)
		if err != nil {
			return nil, malformed(status, fmt.Errorf("metric %q: %w", k, err))
		}
		out[k] = v
	}
	return out, nil
}

// FetchComparison calls GET /compare/{ticker}?days=. A model that failed on
// the server side comes back as a row with Error set, not as an error.
func (c *Client) FetchComparison(ctx context.Context, ticker string, days int) (entity.Comparison, error) {
	var body dto.ComparisonResponse
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	path := "/compare/" + url.PathEscape(ticker)
	if _, err := c.do(ctx, endpointCompare, http.MethodGet, path, q, nil, &body); err != nil {
		return nil, err
	}

	out := make(entity.Comparison, len(body))
	for name, e := range body {
		model := entity.ModelKind(strings.ToLower(name))
		if m, ok := entity.ParseModelKind(name); ok {
			model = m
		}
		out[model] = toComparisonRow(model, e)
	}
	return out, nil
}

// FetchExplore calls the gainers and losers endpoints concurrently and
// returns once both have settled. Either failure fails the whole call.
func (c *Client) FetchExplore(ctx context.Context, f entity.ExploreFilters) (entity.ExploreResult, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(f.Days))
	if f.Model != "" {
		q.Set("model", string(f.Model))
	}
	if s := f.SectorFilter(); s != "" {
		q.Set("sector", s)
	}

	var gainers, losers []dto.Mover
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.fetchMovers(gctx, endpointGainers, "/explore/top-gainers", q, &gainers)
	})
	g.Go(func() error {
		return c.fetchMovers(gctx, endpointLosers, "/explore/top-losers", q, &losers)
	})
	if err := g.Wait(); err != nil {
		return entity.ExploreResult{}, err
	}

	gs, err := toMovers(gainers)
	if err != nil {
		return entity.ExploreResult{}, malformed(http.StatusOK, err)
	}
	ls, err := toMovers(losers)
	if err != nil {
		return entity.ExploreResult{}, malformed(http.StatusOK, err)
	}
	return entity.ExploreResult{Gainers: gs, Losers: ls}, nil
}

func (c *Client) fetchMovers(ctx context.Context, endpoint, path string, q url.Values, out *[]dto.Mover) error {
	status, err := c.do(ctx, endpoint, http.MethodGet, path, q, nil, out)
	if err != nil {
		return err
	}
	for _, m := range *out {
		if err := c.validate.Struct(m); err != nil {
			return malformed(status, err)
		}
	}
	return nil
}

// do sends one request and decodes a 2xx JSON body into out. It returns the
// response status so callers can attach it to later validation failures.
func (c *Client) do(ctx context.Context, endpoint, method, path string, q url.Values, in, out any) (status int, err error) {
	start := time.Now()
	defer func() {
		c.observe(endpoint, err, time.Since(start))
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, &domain.APIError{Err: err}
		}
	}

	u := c.cfg.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("marshal %s request: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("predict api request", "endpoint", endpoint, "method", method, "url", u)

	res, err := c.client.Do(req)
	if err != nil {
		return 0, &domain.APIError{Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			c.log.Warn("failed to close response body", "endpoint", endpoint, "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res.StatusCode, &domain.APIError{Status: res.StatusCode, Detail: readDetail(res.Body)}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return res.StatusCode, malformed(res.StatusCode, err)
	}
	return res.StatusCode, nil
}

func (c *Client) observe(endpoint string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 0 {
			outcome = "transport_error"
		}
		c.log.Warn("predict api request failed", "endpoint", endpoint, "error", err, "elapsed", elapsed)
	}
	if c.recorder != nil {
		c.recorder.ObserveRequest(endpoint, outcome, elapsed)
	}
}

// readDetail extracts a string "detail" from an error body, if there is one.
func readDetail(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(b) == 0 {
		return ""
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(b, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

func malformed(status int, err error) *domain.APIError {
	return &domain.APIError{Status: status, Err: fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)}
}

// Package handler provides HTTP handlers for the dashboard feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/dashboard/domain"
	"stock_dashboard/internal/feature/dashboard/transport/http/dto"
	"stock_dashboard/internal/feature/dashboard/usecase"
	forecastdomain "stock_dashboard/internal/feature/forecast/domain"
	"stock_dashboard/internal/feature/forecast/domain/entity"
	tickerdomain "stock_dashboard/internal/feature/ticker/domain"
	tickerentity "stock_dashboard/internal/feature/ticker/domain/entity"
	jwtmw "stock_dashboard/internal/platform/jwt"
)

// MaxWait caps GET /dashboard?wait=.
const MaxWait = 30 * time.Second

// SessionStore holds one Controller per session.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SessionStore interface {
	Create() (string, *usecase.Controller)
	Get(id string) (*usecase.Controller, error)
	Remove(id string)
}

// TickerResolver validates ticker input before anything is sent to the service.
type TickerResolver interface {
	Resolve(raw string) (tickerentity.Symbol, error)
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	GenerateToken(sessionID string) (string, error)
}

// DashboardHandler binds HTTP requests to a session's Controller.
type DashboardHandler struct {
	sessions SessionStore
	resolver TickerResolver
	tokens   TokenIssuer
	log      *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(sessions SessionStore, resolver TickerResolver, tokens TokenIssuer, log *slog.Logger) *DashboardHandler {
	if log == nil {
		log = slog.Default()
	}
	return &DashboardHandler{sessions: sessions, resolver: resolver, tokens: tokens, log: log}
}

// CreateSession starts a dashboard session and returns its bearer token.
//
// POST /sessions
func (h *DashboardHandler) CreateSession(c *gin.Context) {
	id, _ := h.sessions.Create()
	token, err := h.tokens.GenerateToken(id)
	if err != nil {
		h.sessions.Remove(id)
		h.log.Error("failed to issue session token", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, dto.SessionResponse{Token: token, SessionID: id})
}

// Get returns the dashboard state.
//
// GET /dashboard?wait=5s
func (h *DashboardHandler) Get(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	var q dto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid query"})
		return
	}
	if q.Wait == "" {
		c.JSON(http.StatusOK, present(ctrl.Snapshot()))
		return
	}

	wait, err := time.ParseDuration(q.Wait)
	if err != nil || wait < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid wait"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), min(wait, MaxWait))
	defer cancel()
	// A timed-out wait still answers with whatever state was reached.
	snap, _ := ctrl.Settled(ctx)
	c.JSON(http.StatusOK, present(snap))
}

// SelectTicker resolves the input and, when it names a known symbol, issues
// its forecast. Unknown input is rejected here and never reaches the service.
//
// POST /dashboard/ticker {"input": "aapl"}
func (h *DashboardHandler) SelectTicker(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	var req dto.SelectTickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	sym, err := h.resolver.Resolve(req.Input)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := ctrl.SelectTicker(sym); err != nil {
		h.fail(c, err)
		return
	}
	h.accepted(c, ctrl, true)
}

// SelectModel re-issues the forecast under another model.
//
// PUT /dashboard/model {"model": "arima"}
func (h *DashboardHandler) SelectModel(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	var req dto.SelectModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := ctrl.SelectModel(entity.ModelKind(req.Model)); err != nil {
		h.fail(c, err)
		return
	}
	h.accepted(c, ctrl, true)
}

// Compare runs a model comparison. Without a selected ticker it does nothing.
//
// POST /dashboard/compare {"days": 7}
func (h *DashboardHandler) Compare(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if req.Days == 0 {
		req.Days = entity.DefaultCompareDays
	}
	issued, err := ctrl.Compare(req.Days)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.accepted(c, ctrl, issued)
}

// SetExplore changes the explore filters. The request goes out once the
// filters stop changing.
//
// PUT /dashboard/explore {"days": 30, "model": "prophet", "sector": "All"}
func (h *DashboardHandler) SetExplore(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	var req dto.ExploreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	f := entity.ExploreFilters{Days: req.Days, Model: entity.ModelKind(req.Model), Sector: req.Sector}
	if err := ctrl.SetExploreFilters(f); err != nil {
		h.fail(c, err)
		return
	}
	h.accepted(c, ctrl, true)
}

// RefreshExplore reloads explore data for the current filters immediately.
//
// POST /dashboard/explore/refresh
func (h *DashboardHandler) RefreshExplore(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	if err := ctrl.RefreshExplore(); err != nil {
		h.fail(c, err)
		return
	}
	h.accepted(c, ctrl, true)
}

func (h *DashboardHandler) controller(c *gin.Context) (*usecase.Controller, bool) {
	ctrl, err := h.sessions.Get(c.GetString(jwtmw.ContextSessionID))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return ctrl, true
}

func (h *DashboardHandler) accepted(c *gin.Context, ctrl *usecase.Controller, issued bool) {
	resp := present(ctrl.Snapshot())
	resp.Accepted = &issued
	c.JSON(http.StatusAccepted, resp)
}

func (h *DashboardHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tickerdomain.ErrEmptyInput),
		errors.Is(err, tickerdomain.ErrUnknownTicker),
		errors.Is(err, forecastdomain.ErrInvalidModel),
		errors.Is(err, forecastdomain.ErrInvalidDays),
		errors.Is(err, domain.ErrNoTickerSelected):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrClosed):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "session expired"})
	default:
		h.log.Error("dashboard request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

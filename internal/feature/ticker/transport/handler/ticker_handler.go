// Package handler provides HTTP handlers for the ticker feature.
package handler

import (
	"iter"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/ticker/domain/entity"
	"stock_dashboard/internal/feature/ticker/transport/http/dto"
	"stock_dashboard/internal/feature/ticker/usecase"
)

// DefaultCandidateLimit caps the candidate list when no limit is given.
const DefaultCandidateLimit = 10

// TickerResolver is the autocomplete side of the resolver.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TickerResolver interface {
	Candidates(query string) iter.Seq[entity.Symbol]
	Match(raw string) (entity.Symbol, bool)
}

// TickerHandler serves autocomplete requests.
type TickerHandler struct {
	resolver TickerResolver
}

// NewTickerHandler creates a new TickerHandler.
func NewTickerHandler(r TickerResolver) *TickerHandler {
	return &TickerHandler{resolver: r}
}

// Candidates returns symbols containing q, in universe order.
//
// GET /tickers?q=aa&limit=5
func (h *TickerHandler) Candidates(c *gin.Context) {
	var q dto.CandidatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if q.Limit == 0 {
		q.Limit = DefaultCandidateLimit
	}

	symbols := usecase.Take(h.resolver.Candidates(q.Q), q.Limit)
	out := dto.CandidatesResponse{Candidates: make([]string, 0, len(symbols))}
	for _, s := range symbols {
		out.Candidates = append(out.Candidates, s.String())
	}
	if s, ok := h.resolver.Match(q.Q); ok {
		out.Match = s.String()
	}
	c.JSON(http.StatusOK, out)
}

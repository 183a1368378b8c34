// Package usecase implements ticker resolution against the known symbol universe.
package usecase

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"stock_dashboard/internal/feature/ticker/domain"
	"stock_dashboard/internal/feature/ticker/domain/entity"
)

// SymbolRepository abstracts where the symbol universe is loaded from.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// LoadUniverse reads the active codes once and freezes them into a Universe.
func LoadUniverse(ctx context.Context, repo SymbolRepository) (*entity.Universe, error) {
	codes, err := repo.ListActiveCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load symbol universe: %w", err)
	}
	return entity.NewUniverse(codes), nil
}

// Resolver validates and normalizes free-text ticker input.
// It performs no I/O.
type Resolver struct {
	universe *entity.Universe
}

// NewResolver creates a Resolver over the given universe.
func NewResolver(u *entity.Universe) *Resolver {
	return &Resolver{universe: u}
}

// Resolve is the explicit confirm action: it normalizes raw input and
// accepts it only if it names a known symbol.
func (r *Resolver) Resolve(raw string) (entity.Symbol, error) {
	s := entity.Normalize(raw)
	if s.IsZero() {
		return "", domain.ErrEmptyInput
	}
	if !r.universe.Contains(s) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTicker, s)
	}
	return s, nil
}

// Match reports whether raw, as typed, already names a known symbol.
// Such input commits without a separate confirm action.
func (r *Resolver) Match(raw string) (entity.Symbol, bool) {
	s, err := r.Resolve(raw)
	return s, err == nil
}

// Candidates filters the universe by case-insensitive substring match.
// The sequence is lazy and can be ranged over any number of times;
// results keep universe order. A blank query yields nothing.
func (r *Resolver) Candidates(query string) iter.Seq[entity.Symbol] {
	needle := strings.ToUpper(strings.TrimSpace(query))
	return func(yield func(entity.Symbol) bool) {
		if needle == "" {
			return
		}
		for s := range r.universe.All() {
			if !strings.Contains(string(s), needle) {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Take collects at most n symbols from seq. n <= 0 means no limit.
func Take(seq iter.Seq[entity.Symbol], n int) []entity.Symbol {
	out := make([]entity.Symbol, 0)
	for s := range seq {
		if n > 0 && len(out) >= n {
			break
		}
		out = append(out, s)
	}
	return out
}

// Size returns the number of known symbols.
func (r *Resolver) Size() int { return r.universe.Len() }

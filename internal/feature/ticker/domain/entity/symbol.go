// Package entity defines the domain models for the ticker feature.
package entity

import (
	"iter"
	"strings"
)

// Symbol is a normalized ticker symbol (trimmed, uppercase), e.g. "AAPL".
type Symbol string

// String returns the symbol as a plain string.
func (s Symbol) String() string { return string(s) }

// IsZero reports whether no symbol is set.
func (s Symbol) IsZero() bool { return s == "" }

// Normalize trims surrounding whitespace and uppercases raw user input.
func Normalize(raw string) Symbol {
	return Symbol(strings.ToUpper(strings.TrimSpace(raw)))
}

// Universe is the finite, ordered set of symbols a user may select.
// It is built once and never mutated, so it can be shared without locking.
type Universe struct {
	symbols []Symbol
	index   map[Symbol]struct{}
}

// NewUniverse builds a Universe from raw codes. Codes are normalized,
// blanks are dropped, and duplicates keep their first position.
func NewUniverse(codes []string) *Universe {
	u := &Universe{
		symbols: make([]Symbol, 0, len(codes)),
		index:   make(map[Symbol]struct{}, len(codes)),
	}
	for _, c := range codes {
		s := Normalize(c)
		if s.IsZero() {
			continue
		}
		if _, ok := u.index[s]; ok {
			continue
		}
		u.index[s] = struct{}{}
		u.symbols = append(u.symbols, s)
	}
	return u
}

// Contains reports whether s is a member of the universe.
func (u *Universe) Contains(s Symbol) bool {
	_, ok := u.index[s]
	return ok
}

// Len returns the number of symbols.
func (u *Universe) Len() int { return len(u.symbols) }

// All yields every symbol in universe order.
func (u *Universe) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, s := range u.symbols {
			if !yield(s) {
				return
			}
		}
	}
}

package entity_test

import (
	"slices"
	"testing"

	"stock_dashboard/internal/feature/ticker/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want entity.Symbol
	}{
		{"aapl", "AAPL"},
		{"  msft \t", "MSFT"},
		{"Brk.b", "BRK.B"},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, entity.Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNewUniverse_NormalizesAndDeduplicates(t *testing.T) {
	t.Parallel()

	u := entity.NewUniverse([]string{"aapl", "", "MSFT", " AAPL ", "amzn"})

	assert.Equal(t, 3, u.Len())
	assert.Equal(t, []entity.Symbol{"AAPL", "MSFT", "AMZN"}, slices.Collect(u.All()))
	assert.True(t, u.Contains("AMZN"))
	assert.False(t, u.Contains("amzn"), "membership is checked on normalized symbols")
}

func TestUniverse_AllStopsEarly(t *testing.T) {
	t.Parallel()

	u := entity.NewUniverse([]string{"A", "B", "C"})
	var seen []entity.Symbol
	for s := range u.All() {
		seen = append(seen, s)
		if s == "B" {
			break
		}
	}
	assert.Equal(t, []entity.Symbol{"A", "B"}, seen)
}

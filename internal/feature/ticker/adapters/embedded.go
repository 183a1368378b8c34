// Package adapters provides symbol universe sources for the ticker feature.
package adapters

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"stock_dashboard/internal/feature/ticker/usecase"
)

//go:embed data/sp500.json
var sp500JSON []byte

// embeddedSymbols serves the static S&P 500 list bundled with the binary.
type embeddedSymbols struct {
	raw []byte
}

var _ usecase.SymbolRepository = (*embeddedSymbols)(nil)

// NewEmbeddedSymbols returns the bundled symbol list as a SymbolRepository.
func NewEmbeddedSymbols() *embeddedSymbols {
	return &embeddedSymbols{raw: sp500JSON}
}

// ListActiveCodes decodes the bundled JSON array of codes.
func (e *embeddedSymbols) ListActiveCodes(_ context.Context) ([]string, error) {
	var codes []string
	if err := json.Unmarshal(e.raw, &codes); err != nil {
		return nil, fmt.Errorf("decode embedded symbols: %w", err)
	}
	return codes, nil
}

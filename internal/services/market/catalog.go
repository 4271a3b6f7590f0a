// Package market holds the fixed registry of tradable instruments.
package market

import (
	"strings"

	"github.com/vadiminshakov/papertrader/internal/domain"
)

// Catalog is the fixed registry of tradable instruments. It is populated
// once at startup and never mutated afterwards.
type Catalog struct {
	instruments []domain.Instrument
	bySymbol    map[string]int
}

// NewCatalog creates a catalog from the given instruments, preserving
// registration order. Later duplicates of a symbol are ignored.
func NewCatalog(instruments []domain.Instrument) *Catalog {
	c := &Catalog{
		instruments: make([]domain.Instrument, 0, len(instruments)),
		bySymbol:    make(map[string]int, len(instruments)),
	}
	for _, inst := range instruments {
		key := strings.ToUpper(inst.Symbol)
		if _, ok := c.bySymbol[key]; ok {
			continue
		}
		c.bySymbol[key] = len(c.instruments)
		c.instruments = append(c.instruments, inst)
	}
	return c
}

// List returns all instruments in registration order.
func (c *Catalog) List() []domain.Instrument {
	out := make([]domain.Instrument, len(c.instruments))
	copy(out, c.instruments)
	return out
}

// Find looks up an instrument by symbol, case-insensitively.
// Returns domain.ErrStockNotFound when the symbol is not listed.
func (c *Catalog) Find(symbol string) (domain.Instrument, error) {
	idx, ok := c.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return domain.Instrument{}, domain.ErrStockNotFound
	}
	return c.instruments[idx], nil
}

// Len returns the number of listed instruments.
func (c *Catalog) Len() int {
	return len(c.instruments)
}

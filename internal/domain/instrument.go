// Package domain defines core data structures used throughout the trading session.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Instrument is a tradable stock entry.
type Instrument struct {
	// Symbol ticker symbol, unique case-insensitive key.
	Symbol string
	// Name display name of the company.
	Name string
	// Price current quote, fixed for the lifetime of the session.
	Price decimal.Decimal
}

// String returns a human-readable string representation.
func (i Instrument) String() string {
	return fmt.Sprintf("%s (%s) @ %s", i.Symbol, i.Name, i.Price.StringFixed(2))
}

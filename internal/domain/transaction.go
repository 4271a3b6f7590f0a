package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeKind side of an executed trade.
type TradeKind string

const (
	// TradeKindBuy shares bought for cash.
	TradeKindBuy TradeKind = "BUY"
	// TradeKindSell shares sold for cash.
	TradeKindSell TradeKind = "SELL"
)

// String returns the string representation.
func (k TradeKind) String() string {
	return string(k)
}

// IsValid checks if the TradeKind value is valid.
func (k TradeKind) IsValid() bool {
	return k == TradeKindBuy || k == TradeKindSell
}

// Transaction is an immutable record of one completed buy or sell.
type Transaction struct {
	// ID unique identifier assigned at execution.
	ID string
	// Symbol ticker of the traded instrument.
	Symbol string
	// Quantity number of shares, always positive.
	Quantity int64
	// Price per-share execution price.
	Price decimal.Decimal
	// Kind buy or sell.
	Kind TradeKind
	// Timestamp execution time.
	Timestamp time.Time
}

// NewTransaction creates a transaction record for a trade executed now.
func NewTransaction(symbol string, quantity int64, price decimal.Decimal, kind TradeKind) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Quantity:  quantity,
		Price:     price,
		Kind:      kind,
		Timestamp: time.Now(),
	}
}

// Total returns the cash moved by this transaction (price × quantity).
func (t Transaction) Total() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(t.Quantity))
}

// String returns a human-readable string representation.
func (t Transaction) String() string {
	return fmt.Sprintf("%-5s %5d @ $%s [%s] %s",
		t.Symbol, t.Quantity, t.Price.StringFixed(2), t.Kind, t.Timestamp.Format(time.RFC3339))
}

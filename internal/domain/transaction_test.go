package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	price := decimal.RequireFromString("175.20")
	before := time.Now()

	tx := NewTransaction("AAPL", 10, price, TradeKindBuy)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "AAPL", tx.Symbol)
	assert.EqualValues(t, 10, tx.Quantity)
	assert.True(t, tx.Price.Equal(price))
	assert.Equal(t, TradeKindBuy, tx.Kind)
	require.False(t, tx.Timestamp.Before(before))

	other := NewTransaction("AAPL", 10, price, TradeKindBuy)
	assert.NotEqual(t, tx.ID, other.ID)
}

func TestTransaction_Total(t *testing.T) {
	tx := NewTransaction("AAPL", 10, decimal.RequireFromString("175.20"), TradeKindBuy)
	assert.Equal(t, "1752.00", tx.Total().StringFixed(2))
}

func TestTransaction_String(t *testing.T) {
	tx := NewTransaction("MSFT", 3, decimal.RequireFromString("348.15"), TradeKindSell)

	s := tx.String()
	assert.Contains(t, s, "MSFT")
	assert.Contains(t, s, "@ $348.15")
	assert.Contains(t, s, "[SELL]")
}

func TestTradeKind(t *testing.T) {
	assert.True(t, TradeKindBuy.IsValid())
	assert.True(t, TradeKindSell.IsValid())
	assert.False(t, TradeKind("SHORT").IsValid())
	assert.Equal(t, "BUY", TradeKindBuy.String())
	assert.Equal(t, "SELL", TradeKindSell.String())
}

// Package account implements the trading account: cash balance, holdings
// and the log of executed transactions.
package account

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/papertrader/internal/domain"
	"go.uber.org/zap"
)

// Account holds the cash balance, the shares owned per symbol and the
// chronological log of executed trades. It is owned by a single session
// and is not safe for concurrent use; callers must serialize access.
type Account struct {
	owner        string
	cash         decimal.Decimal
	holdings     map[string]int64
	transactions []domain.Transaction
	logger       *zap.Logger
}

// Position is one holdings entry in a portfolio snapshot.
type Position struct {
	Symbol   string
	Quantity int64
}

// PortfolioView is a read-only snapshot of the account state.
type PortfolioView struct {
	Owner string
	Cash  decimal.Decimal
	// Positions held symbols with quantities, sorted by symbol.
	Positions []Position
	// MarketValue total value of the positions at catalog prices.
	MarketValue decimal.Decimal
}

// New creates an account with the given owner and starting balance,
// empty holdings and an empty transaction log.
func New(owner string, balance decimal.Decimal, logger *zap.Logger) *Account {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Account{
		owner:    owner,
		cash:     balance,
		holdings: make(map[string]int64),
		logger:   logger,
	}
}

// Owner returns the account owner name.
func (a *Account) Owner() string {
	return a.owner
}

// Cash returns the current cash balance.
func (a *Account) Cash() decimal.Decimal {
	return a.cash
}

// Buy purchases quantity shares of the instrument at its current price.
// Returns domain.ErrInvalidQuantity for a non-positive quantity and
// domain.ErrInsufficientFunds when the cost exceeds the cash balance;
// in both cases nothing is mutated.
func (a *Account) Buy(inst domain.Instrument, quantity int64) (domain.Transaction, error) {
	if quantity <= 0 {
		return domain.Transaction{}, domain.ErrInvalidQuantity
	}

	cost := inst.Price.Mul(decimal.NewFromInt(quantity))
	if a.cash.LessThan(cost) {
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}

	a.cash = a.cash.Sub(cost)
	a.holdings[inst.Symbol] += quantity

	tx := domain.NewTransaction(inst.Symbol, quantity, inst.Price, domain.TradeKindBuy)
	a.transactions = append(a.transactions, tx)

	a.logger.Info("buy executed",
		zap.String("id", tx.ID),
		zap.String("symbol", tx.Symbol),
		zap.Int64("quantity", tx.Quantity),
		zap.String("price", tx.Price.StringFixed(2)),
		zap.String("balance", a.cash.StringFixed(2)))
	return tx, nil
}

// Sell sells quantity shares of the instrument at its current price.
// Returns domain.ErrInvalidQuantity for a non-positive quantity and
// domain.ErrInsufficientShares when more shares are requested than owned;
// in both cases nothing is mutated. A holding drained to zero is removed
// from the account entirely.
func (a *Account) Sell(inst domain.Instrument, quantity int64) (domain.Transaction, error) {
	if quantity <= 0 {
		return domain.Transaction{}, domain.ErrInvalidQuantity
	}

	owned := a.holdings[inst.Symbol]
	if owned < quantity {
		return domain.Transaction{}, domain.ErrInsufficientShares
	}

	proceeds := inst.Price.Mul(decimal.NewFromInt(quantity))
	a.cash = a.cash.Add(proceeds)
	if owned == quantity {
		delete(a.holdings, inst.Symbol)
	} else {
		a.holdings[inst.Symbol] = owned - quantity
	}

	tx := domain.NewTransaction(inst.Symbol, quantity, inst.Price, domain.TradeKindSell)
	a.transactions = append(a.transactions, tx)

	a.logger.Info("sell executed",
		zap.String("id", tx.ID),
		zap.String("symbol", tx.Symbol),
		zap.Int64("quantity", tx.Quantity),
		zap.String("price", tx.Price.StringFixed(2)),
		zap.String("balance", a.cash.StringFixed(2)))
	return tx, nil
}

// Quantity returns the number of shares owned for the symbol, 0 when none.
func (a *Account) Quantity(symbol string) int64 {
	return a.holdings[symbol]
}

// Portfolio returns a snapshot of the account with positions sorted by
// symbol and their total market value priced by the given quote function.
// A nil pricer values every position at zero.
func (a *Account) Portfolio(quote func(symbol string) (decimal.Decimal, bool)) PortfolioView {
	view := PortfolioView{
		Owner:       a.owner,
		Cash:        a.cash,
		Positions:   make([]Position, 0, len(a.holdings)),
		MarketValue: decimal.Zero,
	}
	for symbol, qty := range a.holdings {
		view.Positions = append(view.Positions, Position{Symbol: symbol, Quantity: qty})
		if quote != nil {
			if price, ok := quote(symbol); ok {
				view.MarketValue = view.MarketValue.Add(price.Mul(decimal.NewFromInt(qty)))
			}
		}
	}
	sort.Slice(view.Positions, func(i, j int) bool {
		return view.Positions[i].Symbol < view.Positions[j].Symbol
	})
	return view
}

// Transactions returns the full transaction log in chronological order.
func (a *Account) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

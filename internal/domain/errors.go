package domain

import "errors"

// Sentinel errors for the trading session. The session driver maps these
// to the messages shown to the user; none of them is fatal.
var (
	ErrStockNotFound      = errors.New("stock not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)

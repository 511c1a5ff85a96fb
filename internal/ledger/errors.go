package ledger

import "errors"

// InsufficientFundsCode is reported to API clients alongside ErrInsufficientFunds.
const InsufficientFundsCode = "INVALID_WALLET_BALANCE"

var (
	ErrValidation        error = errors.New("validation failed")
	ErrNotFound          error = errors.New("not found")
	ErrInsufficientFunds error = errors.New("insufficient funds")
	ErrDuplicate         error = errors.New("already exists")
)

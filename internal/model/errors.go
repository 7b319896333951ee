package model

import "errors"

// Domain errors. Operations wrap these with context; callers match
// with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid account parameters")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("account not found")
	ErrUnauthorized      = errors.New("invalid credential")
	ErrSameAccount       = errors.New("source and target are the same account")
	ErrPersistence       = errors.New("could not persist ledger state")
)

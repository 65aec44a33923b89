package bank

import "errors"

// Business-rule violations. All are expected, recoverable outcomes: the
// presentation shell maps each to a user message and re-prompts.
var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrPerTransactionLimit  = errors.New("amount exceeds the per-withdrawal limit")
	ErrDailyWithdrawalLimit = errors.New("daily withdrawal limit reached")
	ErrClientNotFound       = errors.New("client not found")
	ErrAccountNotFound      = errors.New("client has no account")
	ErrDuplicateClient      = errors.New("client with this tax ID already exists")
	ErrMalformedTaxID       = errors.New("tax ID must contain exactly 11 digits")
)

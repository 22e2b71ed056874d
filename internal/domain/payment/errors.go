package payment

import "errors"

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidAmount        = errors.New("payment amount must be positive")
	ErrInvalidCurrency      = errors.New("currency must be a 3 letter code")
	ErrPaymentFailed        = errors.New("payment has failed")
	ErrAlreadyCompleted     = errors.New("payment already completed")
	ErrTransactionMismatch  = errors.New("transaction does not match checkout session")
	ErrCheckoutSessionFetch = errors.New("failed to fetch checkout session")
)

package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when an amount cannot be represented in the
	// currency's smallest unit.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCurrency is returned when a currency code is not a valid ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrMismatchedCurrencies is returned when performing operations on money with
	// different currencies.
	ErrMismatchedCurrencies = errors.New("mismatched currencies")

	// ErrInvalidPercentage is returned when a percentage is outside [0, 100].
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
)

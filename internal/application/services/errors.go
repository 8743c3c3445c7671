package services

import "errors"

const (
	MinHistoryDays = 1
	MaxHistoryDays = 365
)

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidDays         = errors.New("days must be between 1 and 365")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	// ErrRateNotFound se retorna cuando una cotización resuelta no sirve como divisor
	ErrRateNotFound = errors.New("rate not found")
)

// IsValidationError indica si el error se debe a la entrada del cliente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedCurrency) ||
		errors.Is(err, ErrInvalidDays) ||
		errors.Is(err, ErrInvalidAmount)
}

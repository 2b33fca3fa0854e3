package currency

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCurrency is returned when a code is absent from the registry.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidRegistry is returned when registry data cannot be loaded.
	ErrInvalidRegistry = errors.New("invalid currency registry")
	// ErrInvalidEncoding is returned when a serialized currency is malformed.
	ErrInvalidEncoding = errors.New("invalid currency encoding")
)

// UnknownCurrencyError reports the code that failed registry lookup.
type UnknownCurrencyError struct {
	Code string
}

// Error returns the formatted lookup failure.
func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCurrency, e.Code)
}

// Unwrap returns ErrUnknownCurrency for errors.Is.
func (e *UnknownCurrencyError) Unwrap() error {
	return ErrUnknownCurrency
}

package money

import (
	"errors"
	"fmt"

	"github.com/Reservix/money/currency"
	"github.com/Reservix/money/safe"
)

var (
	// ErrInvalidArgument is returned for malformed operands: unknown rounding
	// modes, non-finite factors, negative ratios or unparsable text.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCurrencyMismatch is returned when a binary operation receives operands
	// of differing currencies. It also matches ErrInvalidArgument.
	ErrCurrencyMismatch = fmt.Errorf("%w: currency mismatch", ErrInvalidArgument)
	// ErrDivisionByZero is returned alongside ErrInvalidArgument when a divisor
	// or the sum of allocation ratios is zero.
	ErrDivisionByZero = safe.ErrDivisionByZero
	// ErrOverflow is returned when a result does not fit in an int64 amount.
	ErrOverflow = safe.ErrIntegerOverflow
	// ErrUnknownCurrency is returned when a currency code is not registered.
	ErrUnknownCurrency = currency.ErrUnknownCurrency
)

func mismatch(op string, a, b Money) error {
	return fmt.Errorf("%s %s with %s: %w", op, a.currency, b.currency, ErrCurrencyMismatch)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func divisionByZero(what string) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, what, ErrDivisionByZero)
}

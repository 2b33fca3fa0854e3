package safe

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when attempting to divide by zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrIntegerOverflow is returned when a result does not fit in an int64.
var ErrIntegerOverflow = errors.New("integer overflow")

// AddInt64 returns a+b, or ErrIntegerOverflow if the sum wraps.
//
// Example:
//
//	total, err := safe.AddInt64(balance, credit)
//	if err != nil {
//	    return fmt.Errorf("apply credit: %w", err)
//	}
func AddInt64(a, b int64) (int64, error) {
	sum := a + b

	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrIntegerOverflow
	}

	return sum, nil
}

// SubInt64 returns a-b, or ErrIntegerOverflow if the difference wraps.
func SubInt64(a, b int64) (int64, error) {
	diff := a - b

	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, ErrIntegerOverflow
	}

	return diff, nil
}

// MulInt64 returns a*b, or ErrIntegerOverflow if the product wraps.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrIntegerOverflow
	}

	product := a * b
	if product/b != a {
		return 0, ErrIntegerOverflow
	}

	return product, nil
}

// NegateInt64 returns -a. MinInt64 has no positive counterpart and yields
// ErrIntegerOverflow.
func NegateInt64(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrIntegerOverflow
	}

	return -a, nil
}

// Divide performs decimal division with zero check.
// Returns ErrDivisionByZero if denominator is zero.
//
// Example:
//
//	result, err := safe.Divide(numerator, denominator)
//	if err != nil {
//	    return fmt.Errorf("calculate ratio: %w", err)
//	}
func Divide(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Div(denominator), nil
}

// QuoRem performs exact integer division of two decimals.
// The quotient is truncated toward zero and the remainder carries the sign of
// the numerator, so numerator == denominator*quotient + remainder holds exactly.
// Returns ErrDivisionByZero if denominator is zero.
func QuoRem(numerator, denominator decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, decimal.Zero, ErrDivisionByZero
	}

	quotient, remainder := numerator.QuoRem(denominator, 0)

	return quotient, remainder, nil
}

// DecimalToInt64 converts an integral decimal to int64.
// Returns ErrIntegerOverflow if the value is outside the int64 range.
// Any fractional part is truncated toward zero.
func DecimalToInt64(d decimal.Decimal) (int64, error) {
	whole := d.Truncate(0).BigInt()
	if !whole.IsInt64() {
		return 0, ErrIntegerOverflow
	}

	return whole.Int64(), nil
}

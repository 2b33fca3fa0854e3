package money

import (
	"fmt"
	"math"

	"github.com/Reservix/money/safe"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, mismatch("add", m, other)
	}

	sum, err := safe.AddInt64(m.amount, other.amount)
	if err != nil {
		return Money{}, fmt.Errorf("add %s to %s: %w", other, m, err)
	}

	return New(sum, m.currency), nil
}

// Subtract returns m - other.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, mismatch("subtract", m, other)
	}

	diff, err := safe.SubInt64(m.amount, other.amount)
	if err != nil {
		return Money{}, fmt.Errorf("subtract %s from %s: %w", other, m, err)
	}

	return New(diff, m.currency), nil
}

// Multiply returns m * factor rounded to whole units by mode.
// factor must be finite.
func (m Money) Multiply(factor float64, mode RoundingMode) (Money, error) {
	if err := checkFinite(factor); err != nil {
		return Money{}, err
	}

	return m.MultiplyDecimal(decimal.NewFromFloat(factor), mode)
}

// MultiplyDecimal is Multiply with an arbitrary-precision factor.
func (m Money) MultiplyDecimal(factor decimal.Decimal, mode RoundingMode) (Money, error) {
	if err := mode.validate(); err != nil {
		return Money{}, err
	}

	product, err := roundQuotient(decimal.NewFromInt(m.amount).Mul(factor), one, mode)
	if err != nil {
		return Money{}, fmt.Errorf("multiply %s by %s: %w", m, factor, err)
	}

	return New(product, m.currency), nil
}

// Divide returns m / divisor rounded to whole units by mode.
// divisor must be finite and non-zero.
func (m Money) Divide(divisor float64, mode RoundingMode) (Money, error) {
	if err := checkFinite(divisor); err != nil {
		return Money{}, err
	}

	return m.DivideDecimal(decimal.NewFromFloat(divisor), mode)
}

// DivideDecimal is Divide with an arbitrary-precision divisor.
func (m Money) DivideDecimal(divisor decimal.Decimal, mode RoundingMode) (Money, error) {
	if err := mode.validate(); err != nil {
		return Money{}, err
	}

	quotient, err := roundQuotient(decimal.NewFromInt(m.amount), divisor, mode)
	if err != nil {
		return Money{}, fmt.Errorf("divide %s by %s: %w", m, divisor, err)
	}

	return New(quotient, m.currency), nil
}

// Negate returns -m.
func (m Money) Negate() (Money, error) {
	negated, err := safe.NegateInt64(m.amount)
	if err != nil {
		return Money{}, fmt.Errorf("negate %s: %w", m, err)
	}

	return New(negated, m.currency), nil
}

// Absolute returns |m|.
func (m Money) Absolute() (Money, error) {
	if m.amount >= 0 {
		return m, nil
	}

	return m.Negate()
}

func checkFinite(operand float64) error {
	if math.IsNaN(operand) || math.IsInf(operand, 0) {
		return invalid("operand must be a finite number, got %v", operand)
	}

	return nil
}

package money

import (
	"fmt"

	"github.com/Reservix/money/currency"
)

// Money is an amount in the smallest unit of its currency.
type Money struct {
	amount   int64
	currency currency.Currency
}

// New returns amount units of cur.
func New(amount int64, cur currency.Currency) Money {
	return Money{amount: amount, currency: cur}
}

// Of returns amount units of the currency registered under code, e.g.
// Of(500, "USD") for five dollars.
func Of(amount int64, code string) (Money, error) {
	cur, err := currency.New(code)
	if err != nil {
		return Money{}, err
	}

	return New(amount, cur), nil
}

// MustOf is like Of but panics if code is unknown.
func MustOf(amount int64, code string) Money {
	m, err := Of(amount, code)
	if err != nil {
		panic(err)
	}

	return m
}

// Amount returns the number of smallest units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency of m.
func (m Money) Currency() currency.Currency {
	return m.currency
}

// String renders the raw unit count and the currency code, e.g. "1999 USD".
// It is a debugging aid, not a display format.
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// IsSameCurrency reports whether m and other share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency.Equals(other.currency)
}

// Equals reports whether m and other have the same currency and amount.
// Differing currencies yield false, not an error.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// Compare returns -1, 0 or 1 as m is less than, equal to or greater than other.
func (m Money) Compare(other Money) (int, error) {
	if !m.IsSameCurrency(other) {
		return 0, mismatch("compare", m, other)
	}

	switch {
	case m.amount < other.amount:
		return -1, nil
	case m.amount > other.amount:
		return 1, nil
	default:
		return 0, nil
	}
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) (bool, error) {
	cmp, err := m.Compare(other)

	return cmp > 0, err
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	cmp, err := m.Compare(other)
	if err != nil {
		return false, err
	}

	return cmp >= 0, nil
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) (bool, error) {
	cmp, err := m.Compare(other)

	return cmp < 0, err
}

// LessThanOrEqual reports whether m <= other.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	cmp, err := m.Compare(other)
	if err != nil {
		return false, err
	}

	return cmp <= 0, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

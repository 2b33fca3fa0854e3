package money

import (
	"fmt"
	"math"

	"github.com/Reservix/money/safe"
	"github.com/shopspring/decimal"
)

// Allocate splits m into one share per ratio, in order, without losing or
// creating a single unit.
//
// Each share starts as floor(amount*ratio/sum(ratios)). The units left over by
// flooring are then handed out one at a time starting at index 0, so earlier
// ratios receive leftovers first:
//
//	MustOf(100, "USD").Allocate(1, 1, 1) // 34, 33, 33
//
// Ratios must be finite and non-negative, and must not all be zero. An empty
// ratio list yields an empty result.
func (m Money) Allocate(ratios ...float64) ([]Money, error) {
	weights := make([]decimal.Decimal, len(ratios))

	for i, ratio := range ratios {
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < 0 {
			return nil, invalid("ratio %d must be a finite non-negative number, got %v", i, ratio)
		}

		weights[i] = decimal.NewFromFloat(ratio)
	}

	return m.allocate(weights)
}

// AllocateTo splits m into n shares as equal as possible. Leftover units go to
// the first shares.
func (m Money) AllocateTo(n int) ([]Money, error) {
	if n <= 0 {
		return nil, invalid("number of targets must be positive, got %d", n)
	}

	weights := make([]decimal.Decimal, n)
	for i := range weights {
		weights[i] = one
	}

	return m.allocate(weights)
}

func (m Money) allocate(ratios []decimal.Decimal) ([]Money, error) {
	results := make([]Money, len(ratios))
	if len(ratios) == 0 {
		return results, nil
	}

	total := decimal.Zero
	for _, ratio := range ratios {
		total = total.Add(ratio)
	}

	if total.IsZero() {
		return nil, divisionByZero("ratios sum to zero")
	}

	amount := decimal.NewFromInt(m.amount)
	remainder := m.amount

	for i, ratio := range ratios {
		share, err := floorQuotient(amount.Mul(ratio), total)
		if err != nil {
			return nil, fmt.Errorf("allocate %s: %w", m, err)
		}

		results[i] = New(share, m.currency)

		if remainder, err = safe.SubInt64(remainder, share); err != nil {
			return nil, fmt.Errorf("allocate %s: %w", m, err)
		}
	}

	// Flooring leaves 0 <= remainder < len(ratios).
	for i := 0; remainder > 0; i++ {
		results[i%len(results)].amount++
		remainder--
	}

	return results, nil
}

// floorQuotient returns floor(numerator/denominator).
func floorQuotient(numerator, denominator decimal.Decimal) (int64, error) {
	quotient, remainder, err := safe.QuoRem(numerator, denominator)
	if err != nil {
		return 0, err
	}

	floored, err := safe.DecimalToInt64(quotient)
	if err != nil {
		return 0, err
	}

	if !remainder.IsZero() && numerator.Sign() != denominator.Sign() {
		return safe.SubInt64(floored, 1)
	}

	return floored, nil
}

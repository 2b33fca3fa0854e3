package money

import (
	"fmt"
	"strings"

	"github.com/Reservix/money/safe"
	"github.com/shopspring/decimal"
)

// RoundingMode selects how a value exactly halfway between two integers is
// rounded. Values that are not at a tie always round to the nearest integer.
//
// The zero value is not a valid mode.
type RoundingMode int

const (
	// RoundHalfUp rounds ties away from zero: 2.5 -> 3, -2.5 -> -3.
	RoundHalfUp RoundingMode = iota + 1
	// RoundHalfDown rounds ties toward zero: 2.5 -> 2, -2.5 -> -2.
	RoundHalfDown
	// RoundHalfEven rounds ties to the nearest even integer: 2.5 -> 2, 3.5 -> 4.
	RoundHalfEven
	// RoundHalfOdd rounds ties to the nearest odd integer: 2.5 -> 3, 3.5 -> 3.
	RoundHalfOdd
)

var roundingModeNames = map[RoundingMode]string{
	RoundHalfUp:   "HALF_UP",
	RoundHalfDown: "HALF_DOWN",
	RoundHalfEven: "HALF_EVEN",
	RoundHalfOdd:  "HALF_ODD",
}

var two = decimal.NewFromInt(2)

// String returns the mode name, e.g. "HALF_EVEN".
func (mode RoundingMode) String() string {
	if name, ok := roundingModeNames[mode]; ok {
		return name
	}

	return fmt.Sprintf("RoundingMode(%d)", int(mode))
}

// ParseRoundingMode parses names such as "HALF_UP", "half-even" or "half_odd".
func ParseRoundingMode(name string) (RoundingMode, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))

	for mode, modeName := range roundingModeNames {
		if modeName == normalized {
			return mode, nil
		}
	}

	return 0, invalid("unknown rounding mode %q", name)
}

func (mode RoundingMode) validate() error {
	if _, ok := roundingModeNames[mode]; !ok {
		return invalid("unsupported rounding mode %s", mode)
	}

	return nil
}

// roundQuotient returns numerator/denominator rounded to an integer by mode.
// The quotient is evaluated exactly; ties are detected by comparing twice the
// remainder against the denominator.
func roundQuotient(numerator, denominator decimal.Decimal, mode RoundingMode) (int64, error) {
	quotient, remainder, err := safe.QuoRem(numerator, denominator)
	if err != nil {
		return 0, divisionByZero("divisor is zero")
	}

	truncated, err := safe.DecimalToInt64(quotient)
	if err != nil {
		return 0, err
	}

	if remainder.IsZero() {
		return truncated, nil
	}

	// away is the neighbour of truncated on the far side from zero.
	away := int64(1)
	if numerator.Sign() != denominator.Sign() {
		away = -1
	}

	switch remainder.Abs().Mul(two).Cmp(denominator.Abs()) {
	case -1:
		return truncated, nil
	case 1:
		return safe.AddInt64(truncated, away)
	}

	if tieRoundsAway(truncated, mode) {
		return safe.AddInt64(truncated, away)
	}

	return truncated, nil
}

func tieRoundsAway(truncated int64, mode RoundingMode) bool {
	switch mode {
	case RoundHalfUp:
		return true
	case RoundHalfEven:
		return truncated%2 != 0
	case RoundHalfOdd:
		return truncated%2 == 0
	default:
		return false
	}
}

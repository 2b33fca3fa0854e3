package money

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// unitsPattern matches [sign]digits[separator[decimal1[decimal2]]].
var unitsPattern = regexp.MustCompile(`^([-+])?(\d*)[.,]?(\d)?(\d)?$`)

// StringToUnits parses a decimal string into a count of hundredths, e.g.
// "12" -> 1200, "12.5" -> 1250, "-3,07" -> -307, "0.1" -> 10.
//
// The separator may be '.' or ','; at most two decimal digits are accepted and
// missing ones are padded with zero. Surrounding whitespace is ignored. At
// least one digit is required.
func StringToUnits(text string) (int64, error) {
	matches := unitsPattern.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil || matches[2]+matches[3]+matches[4] == "" {
		return 0, invalid("%q could not be parsed as money", text)
	}

	var digits strings.Builder

	if matches[1] == "-" {
		digits.WriteByte('-')
	}

	digits.WriteString(matches[2])
	digits.WriteString(orZero(matches[3]))
	digits.WriteString(orZero(matches[4]))

	units, err := strconv.ParseInt(digits.String(), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse %q: %w", text, ErrOverflow)
	}

	if err != nil {
		return 0, invalid("%q could not be parsed as money: %v", text, err)
	}

	return units, nil
}

// Parse converts text to units with StringToUnits and pairs them with the
// currency registered under code.
func Parse(text, code string) (Money, error) {
	units, err := StringToUnits(text)
	if err != nil {
		return Money{}, err
	}

	return Of(units, code)
}

func orZero(digit string) string {
	if digit == "" {
		return "0"
	}

	return digit
}

package split

import (
	"fmt"
	"math"

	"github.com/Reservix/money"
)

// ErrorCode is a stable code carried by DomainError.
type ErrorCode string

const (
	// ErrorInvalidInput indicates a malformed part or total.
	ErrorInvalidInput ErrorCode = "1001"
	// ErrorCurrencyMismatch indicates a fixed amount in a different currency than the total.
	ErrorCurrencyMismatch ErrorCode = "1002"
	// ErrorValueMismatch indicates the parts cannot add up to the total.
	ErrorValueMismatch ErrorCode = "1003"
	// ErrorOverflow indicates an intermediate sum does not fit in an amount.
	ErrorOverflow ErrorCode = "1004"
)

// DomainError is a structured planning error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}

// Part is one recipient of a split. Exactly one of Amount, Ratio or Remainder
// must be set.
type Part struct {
	Name      string       `json:"name"`
	Amount    *money.Money `json:"amount,omitempty"`
	Ratio     *float64     `json:"ratio,omitempty"`
	Remainder bool         `json:"remainder,omitempty"`
}

// Share is the planned amount for a named part.
type Share struct {
	Name   string      `json:"name"`
	Amount money.Money `json:"amount"`
}

// Plan divides total among parts and returns one Share per part, in order.
//
// Fixed amounts are taken first; they must be positive and in the total's
// currency. What is left is either divided across the ratio parts in
// proportion to their ratios (leftover units go to the earliest ratio parts)
// or given whole to the single remainder part. Ratio and remainder parts
// cannot be mixed. The returned shares always sum to total.
func Plan(total money.Money, parts []Part) ([]Share, error) {
	if !total.IsPositive() {
		return nil, NewDomainError(ErrorInvalidInput, "total", "total must be greater than zero")
	}

	if len(parts) == 0 {
		return nil, NewDomainError(ErrorInvalidInput, "parts", "at least one part is required")
	}

	zero := money.New(0, total.Currency())
	shares := make([]Share, len(parts))
	fixed := zero
	ratios := make([]float64, 0, len(parts))
	ratioIndexes := make([]int, 0, len(parts))
	remainderIndex := -1

	for i, part := range parts {
		field := fmt.Sprintf("parts[%d]", i)
		shares[i] = Share{Name: part.Name, Amount: zero}

		if err := validateStrategy(part, field); err != nil {
			return nil, err
		}

		switch {
		case part.Amount != nil:
			if err := validateFixed(total, *part.Amount, field+".amount"); err != nil {
				return nil, err
			}

			sum, err := fixed.Add(*part.Amount)
			if err != nil {
				return nil, NewDomainError(ErrorOverflow, field+".amount", "fixed amounts overflow")
			}

			fixed = sum
			shares[i].Amount = *part.Amount
		case part.Ratio != nil:
			ratio := *part.Ratio
			if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
				return nil, NewDomainError(ErrorInvalidInput, field+".ratio", "ratio must be a positive finite number")
			}

			ratios = append(ratios, ratio)
			ratioIndexes = append(ratioIndexes, i)
		default:
			if remainderIndex >= 0 {
				return nil, NewDomainError(ErrorInvalidInput, field+".remainder", "only one remainder part is allowed")
			}

			remainderIndex = i
		}
	}

	if len(ratios) > 0 && remainderIndex >= 0 {
		return nil, NewDomainError(ErrorInvalidInput, "parts", "ratio parts cannot be combined with a remainder part")
	}

	left, err := total.Subtract(fixed)
	if err != nil || left.IsNegative() {
		return nil, NewDomainError(
			ErrorValueMismatch,
			"parts",
			fmt.Sprintf("fixed amounts=%s exceed total=%s", fixed, total),
		)
	}

	switch {
	case len(ratios) > 0:
		if err := allocateRatios(left, ratios, ratioIndexes, shares); err != nil {
			return nil, err
		}
	case remainderIndex >= 0:
		if !left.IsPositive() {
			return nil, NewDomainError(ErrorValueMismatch, "parts", "remainder is zero or negative")
		}

		shares[remainderIndex].Amount = left
	case !left.IsZero():
		return nil, NewDomainError(
			ErrorValueMismatch,
			"parts",
			fmt.Sprintf("allocated=%s expected=%s", fixed, total),
		)
	}

	if planned := sumShares(zero, shares); !planned.Equals(total) {
		return nil, NewDomainError(
			ErrorValueMismatch,
			"parts",
			fmt.Sprintf("planned=%s expected=%s", planned, total),
		)
	}

	return shares, nil
}

func validateStrategy(part Part, field string) error {
	strategies := 0
	if part.Amount != nil {
		strategies++
	}

	if part.Ratio != nil {
		strategies++
	}

	if part.Remainder {
		strategies++
	}

	if strategies != 1 {
		return NewDomainError(ErrorInvalidInput, field, "part must define exactly one strategy: amount, ratio, or remainder")
	}

	return nil
}

func validateFixed(total, amount money.Money, field string) error {
	if !total.IsSameCurrency(amount) {
		return NewDomainError(
			ErrorCurrencyMismatch,
			field,
			fmt.Sprintf("amount currency %s does not match total currency %s", amount.Currency(), total.Currency()),
		)
	}

	if !amount.IsPositive() {
		return NewDomainError(ErrorInvalidInput, field, "amount must be greater than zero")
	}

	return nil
}

func allocateRatios(left money.Money, ratios []float64, indexes []int, shares []Share) error {
	allocated, err := left.Allocate(ratios...)
	if err != nil {
		return NewDomainError(ErrorInvalidInput, "parts", err.Error())
	}

	for i, index := range indexes {
		if !allocated[i].IsPositive() {
			return NewDomainError(ErrorValueMismatch, fmt.Sprintf("parts[%d].ratio", index), "ratio produces a non-positive amount")
		}

		shares[index].Amount = allocated[i]
	}

	return nil
}

// sumShares adds planned shares. Shares never exceed the total, so the sum
// cannot overflow.
func sumShares(zero money.Money, shares []Share) money.Money {
	total := zero

	for _, share := range shares {
		if next, err := total.Add(share.Amount); err == nil {
			total = next
		}
	}

	return total
}

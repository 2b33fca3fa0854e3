// Package money represents monetary values as an exact integer count of a
// currency's smallest unit (e.g. cents) paired with a currency.Currency.
//
// Money values are immutable: every operation returns a new value. Binary
// operations require both operands to share a currency and fail with
// ErrCurrencyMismatch otherwise; nothing is ever converted implicitly.
//
//	price, err := money.Of(1999, "USD")
//	if err != nil {
//	    return err
//	}
//
//	shares, err := price.Allocate(70, 30)
//
// Products and quotients with real-valued operands are computed exactly with
// shopspring/decimal and rounded back to whole units by a RoundingMode.
// Integer overflow is reported as ErrOverflow instead of wrapping.
package money

package currency

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Currency identifies a registered currency by its code.
//
// The zero value is not a valid currency; obtain values through New or
// Registry.Currency. Currency is comparable, and == agrees with Equals.
type Currency struct {
	code string
}

// New returns the Currency for code using the default registry.
func New(code string) (Currency, error) {
	registry, err := Default()
	if err != nil {
		return Currency{}, err
	}

	return registry.Currency(code)
}

// MustNew is like New but panics if code is unknown.
// It is intended for package-level variables and tests.
func MustNew(code string) Currency {
	c, err := New(code)
	if err != nil {
		panic(err)
	}

	return c
}

// Code returns the currency code, e.g. "USD".
func (c Currency) Code() string {
	return c.code
}

// String renders the bare code.
func (c Currency) String() string {
	return c.code
}

// Equals reports whether both currencies carry the same code.
func (c Currency) Equals(other Currency) bool {
	return c.code == other.code
}

// IsZero reports whether c is the zero value.
func (c Currency) IsZero() bool {
	return c.code == ""
}

// MarshalText encodes the currency as its code.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// UnmarshalText decodes a code and validates it against the default registry.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// MarshalBSONValue encodes the currency as a BSON string.
func (c Currency) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(c.code)
}

// UnmarshalBSONValue decodes a BSON string and validates it against the
// default registry.
func (c *Currency) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	code, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: expected BSON string, got %s", ErrInvalidEncoding, t)
	}

	return c.UnmarshalText([]byte(code))
}

package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Reservix/money/currency"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// document is the serialized form shared by every encoding:
// the amount in smallest units and the bare currency code.
type document struct {
	Amount   int64  `json:"amount" yaml:"amount" bson:"amount"`
	Currency string `json:"currency" yaml:"currency" bson:"currency"`
}

func (m Money) document() document {
	return document{Amount: m.amount, Currency: m.currency.Code()}
}

func (m *Money) restore(amount int64, code string) error {
	cur, err := currency.New(code)
	if err != nil {
		return err
	}

	*m = New(amount, cur)

	return nil
}

// MarshalJSON encodes m as {"amount":1999,"currency":"USD"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.document())
}

// UnmarshalJSON decodes the MarshalJSON form. Fractional amounts are rejected.
func (m *Money) UnmarshalJSON(data []byte) error {
	var doc struct {
		Amount   json.Number `json:"amount"`
		Currency string      `json:"currency"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: decode money: %w", ErrInvalidArgument, err)
	}

	amount, err := strconv.ParseInt(doc.Amount.String(), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("decode money amount %s: %w", doc.Amount, ErrOverflow)
	}

	if err != nil {
		return invalid("amount %q must be an integer number of units", doc.Amount)
	}

	return m.restore(amount, doc.Currency)
}

// MarshalYAML encodes m as a mapping with amount and currency keys.
func (m Money) MarshalYAML() (any, error) {
	return m.document(), nil
}

// UnmarshalYAML decodes the MarshalYAML form. The amount must be a YAML integer.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	var doc struct {
		Amount   yaml.Node `yaml:"amount"`
		Currency string    `yaml:"currency"`
	}

	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("%w: decode money: %w", ErrInvalidArgument, err)
	}

	if doc.Amount.ShortTag() != "!!int" {
		return invalid("amount %q must be an integer number of units", doc.Amount.Value)
	}

	var amount int64
	if err := doc.Amount.Decode(&amount); err != nil {
		return fmt.Errorf("decode money amount %s: %w", doc.Amount.Value, ErrOverflow)
	}

	return m.restore(amount, doc.Currency)
}

// MarshalBSON encodes m as a document with amount and currency fields.
func (m Money) MarshalBSON() ([]byte, error) {
	return bson.Marshal(m.document())
}

// UnmarshalBSON decodes the MarshalBSON form. The amount must be a BSON
// int32 or int64.
func (m *Money) UnmarshalBSON(data []byte) error {
	raw := bson.Raw(data)

	amountValue, err := raw.LookupErr("amount")
	if err != nil {
		return fmt.Errorf("%w: decode money amount: %w", ErrInvalidArgument, err)
	}

	var amount int64

	switch amountValue.Type {
	case bsontype.Int32:
		amount = int64(amountValue.Int32())
	case bsontype.Int64:
		amount = amountValue.Int64()
	default:
		return invalid("amount must be an integer number of units, got BSON %s", amountValue.Type)
	}

	codeValue, err := raw.LookupErr("currency")
	if err != nil {
		return fmt.Errorf("%w: decode money currency: %w", ErrInvalidArgument, err)
	}

	code, ok := codeValue.StringValueOK()
	if !ok {
		return invalid("currency must be a string, got BSON %s", codeValue.Type)
	}

	return m.restore(amount, code)
}

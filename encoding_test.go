//go:build unit

package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

type invoice struct {
	Number string `json:"number" yaml:"number"`
	Total  Money  `json:"total" yaml:"total"`
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(usd(500))
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":500,"currency":"USD"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, usd(500), decoded)

	nested, err := json.Marshal(invoice{Number: "INV-1", Total: eur(-42)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":"INV-1","total":{"amount":-42,"currency":"EUR"}}`, string(nested))

	var inv invoice
	require.NoError(t, json.Unmarshal(nested, &inv))
	assert.Equal(t, eur(-42), inv.Total)
}

func TestUnmarshalJSONRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "fractional amount", input: `{"amount":1.5,"currency":"USD"}`, want: ErrInvalidArgument},
		{name: "exponent amount", input: `{"amount":1e2,"currency":"USD"}`, want: ErrInvalidArgument},
		{name: "missing amount", input: `{"currency":"USD"}`, want: ErrInvalidArgument},
		{name: "not an object", input: `[1,2]`, want: ErrInvalidArgument},
		{name: "amount overflow", input: `{"amount":9223372036854775808,"currency":"USD"}`, want: ErrOverflow},
		{name: "unknown currency", input: `{"amount":1,"currency":"ZZZ"}`, want: ErrUnknownCurrency},
		{name: "missing currency", input: `{"amount":1}`, want: ErrUnknownCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m Money
			err := json.Unmarshal([]byte(tt.input), &m)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, Money{}, m)
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(usd(1999))
	require.NoError(t, err)
	assert.Equal(t, "amount: 1999\ncurrency: USD\n", string(data))

	var decoded Money
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, usd(1999), decoded)

	nested, err := yaml.Marshal(invoice{Number: "INV-2", Total: eur(7)})
	require.NoError(t, err)

	var inv invoice
	require.NoError(t, yaml.Unmarshal(nested, &inv))
	assert.Equal(t, eur(7), inv.Total)
}

func TestUnmarshalYAMLRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "fractional amount", input: "amount: 1.5\ncurrency: USD\n", want: ErrInvalidArgument},
		{name: "quoted amount", input: "amount: '15'\ncurrency: USD\n", want: ErrInvalidArgument},
		{name: "not a mapping", input: "- 1\n- 2\n", want: ErrInvalidArgument},
		{name: "amount overflow", input: "amount: 9223372036854775808\ncurrency: USD\n", want: ErrOverflow},
		{name: "unknown currency", input: "amount: 1\ncurrency: ZZZ\n", want: ErrUnknownCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m Money
			err := yaml.Unmarshal([]byte(tt.input), &m)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBSONRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := bson.Marshal(usd(-250))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(data, &fields))
	assert.Equal(t, bson.M{"amount": int64(-250), "currency": "USD"}, fields)

	var decoded Money
	require.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, usd(-250), decoded)
}

func TestUnmarshalBSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document bson.D
		want     Money
		wantErr  error
	}{
		{
			name:     "int32 amount",
			document: bson.D{{Key: "amount", Value: int32(7)}, {Key: "currency", Value: "USD"}},
			want:     usd(7),
		},
		{
			name:     "double amount",
			document: bson.D{{Key: "amount", Value: 1.5}, {Key: "currency", Value: "USD"}},
			wantErr:  ErrInvalidArgument,
		},
		{
			name:     "missing amount",
			document: bson.D{{Key: "currency", Value: "USD"}},
			wantErr:  ErrInvalidArgument,
		},
		{
			name:     "numeric currency",
			document: bson.D{{Key: "amount", Value: int64(7)}, {Key: "currency", Value: 840}},
			wantErr:  ErrInvalidArgument,
		},
		{
			name:     "unknown currency",
			document: bson.D{{Key: "amount", Value: int64(7)}, {Key: "currency", Value: "ZZZ"}},
			wantErr:  ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := bson.Marshal(tt.document)
			require.NoError(t, err)

			var m Money
			err = m.UnmarshalBSON(data)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

//go:build unit

package currency

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

func TestNew_KnownCodes(t *testing.T) {
	t.Parallel()

	registry, err := Default()
	require.NoError(t, err)

	for _, code := range registry.Codes() {
		c, err := New(code)

		require.NoError(t, err, code)
		assert.Equal(t, code, c.Code())
		assert.Equal(t, code, c.String())
	}
}

func TestNew_UnknownCodes(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "usd", "US", "XYZ", " USD", "EURO"} {
		t.Run(code, func(t *testing.T) {
			t.Parallel()

			c, err := New(code)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownCurrency)
			assert.True(t, c.IsZero())

			var unknown *UnknownCurrencyError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, code, unknown.Code)
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EUR", MustNew("EUR").Code())
	assert.Panics(t, func() { MustNew("NOPE") })
}

func TestEquals(t *testing.T) {
	t.Parallel()

	usd := MustNew("USD")
	otherUSD := MustNew("USD")
	eur := MustNew("EUR")

	assert.True(t, usd.Equals(otherUSD))
	assert.True(t, usd == otherUSD)
	assert.False(t, usd.Equals(eur))
	assert.False(t, usd.Equals(Currency{}))
	assert.True(t, Currency{}.IsZero())
	assert.False(t, usd.IsZero())
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Currency Currency `json:"currency"`
	}

	encoded, err := json.Marshal(payload{Currency: MustNew("JPY")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"JPY"}`, string(encoded))

	var decoded payload
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, MustNew("JPY"), decoded.Currency)

	err = json.Unmarshal([]byte(`{"currency":"ZZZ"}`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Currency Currency `yaml:"currency"`
	}

	encoded, err := yaml.Marshal(payload{Currency: MustNew("GBP")})
	require.NoError(t, err)
	assert.Equal(t, "currency: GBP\n", string(encoded))

	var decoded payload
	require.NoError(t, yaml.Unmarshal(encoded, &decoded))
	assert.Equal(t, MustNew("GBP"), decoded.Currency)

	err = yaml.Unmarshal([]byte("currency: QQQ\n"), &decoded)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestBSONRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Currency Currency `bson:"currency"`
	}

	encoded, err := bson.Marshal(payload{Currency: MustNew("CHF")})
	require.NoError(t, err)

	raw := bson.Raw(encoded)
	assert.Equal(t, "CHF", raw.Lookup("currency").StringValue())

	var decoded payload
	require.NoError(t, bson.Unmarshal(encoded, &decoded))
	assert.Equal(t, MustNew("CHF"), decoded.Currency)
}

func TestBSONRejectsNonString(t *testing.T) {
	t.Parallel()

	encoded, err := bson.Marshal(bson.M{"currency": 840})
	require.NoError(t, err)

	var decoded struct {
		Currency Currency `bson:"currency"`
	}

	err = bson.Unmarshal(encoded, &decoded)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	const workers = 32

	var wg sync.WaitGroup

	registries := make([]*Registry, workers)

	for i := range workers {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			registry, err := Default()
			assert.NoError(t, err)

			registries[i] = registry
		}(i)
	}

	wg.Wait()

	for _, registry := range registries {
		assert.Same(t, registries[0], registry)
	}
}

package domain

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		m, err := ParseMoney("45.99")
		require.NoError(t, err)
		assert.Equal(t, Money(4599), m)
		assert.Equal(t, "45.99", m.String())
	})

	t.Run("WholeUnits", func(t *testing.T) {
		m, err := ParseMoney("599")
		require.NoError(t, err)
		assert.Equal(t, Money(59900), m)
	})

	t.Run("Zero", func(t *testing.T) {
		m, err := ParseMoney("0")
		require.NoError(t, err)
		assert.Equal(t, Money(0), m)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		m, err := ParseMoney("  5.99 ")
		require.NoError(t, err)
		assert.Equal(t, Money(599), m)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := ParseMoney("-1.00")
		assert.Error(t, err)
	})

	t.Run("NotANumber", func(t *testing.T) {
		_, err := ParseMoney("cheap")
		assert.Error(t, err)
	})
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(Money(4599))
	require.NoError(t, err)
	assert.Equal(t, "45.99", string(data))

	var fromNumber Money
	require.NoError(t, json.Unmarshal([]byte("45.99"), &fromNumber))
	assert.Equal(t, Money(4599), fromNumber)

	var fromString Money
	require.NoError(t, json.Unmarshal([]byte(`"5.99"`), &fromString))
	assert.Equal(t, Money(599), fromString)

	// JSON null leaves the value untouched
	fromNull := Money(123)
	require.NoError(t, json.Unmarshal([]byte("null"), &fromNull))
	assert.Equal(t, Money(123), fromNull)

	// The quoted string "null" is not null, it is a malformed amount
	var fromQuotedNull Money
	assert.Error(t, json.Unmarshal([]byte(`"null"`), &fromQuotedNull))
}

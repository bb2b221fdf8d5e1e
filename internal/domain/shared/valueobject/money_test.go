package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses valid amount", func(t *testing.T) {
		m, err := NewMoneyFromString("50.00")
		require.NoError(t, err)
		assert.Equal(t, "50.00", m.StringFixed())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NewMoneyFromString("Q50")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		sum := NewMoneyFromFloat(100).Add(NewMoneyFromFloat(30))
		assert.Equal(t, "130.00", sum.StringFixed())
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		line := NewMoneyFromFloat(50).MultiplyByInt(2)
		assert.Equal(t, "100.00", line.StringFixed())
	})

	t.Run("no float drift across many additions", func(t *testing.T) {
		unit := NewMoneyFromFloat(0.10)
		total := Zero()
		for i := 0; i < 100; i++ {
			total = total.Add(unit)
		}
		assert.Equal(t, "10.00", total.StringFixed())
	})
}

func TestMoney_Display(t *testing.T) {
	assert.Equal(t, "Q30.00", NewMoneyFromFloat(30).Display())
	assert.Equal(t, "Q0.00", Zero().Display())
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.False(t, NewMoneyFromFloat(1).IsZero())
	assert.True(t, NewMoney(decimal.NewFromInt(-5)).IsNegative())
	assert.True(t, NewMoneyFromFloat(12.5).Equals(mustMoney(t, "12.50")))
}

func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	m, err := NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	original := NewMoneyFromFloat(149.99)
	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `"149.99"`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equals(decoded))
	// representation survives too, not just numeric value
	assert.Equal(t, original, decoded)
}

func TestMoney_UnmarshalInvalid(t *testing.T) {
	var m Money
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &m))
}

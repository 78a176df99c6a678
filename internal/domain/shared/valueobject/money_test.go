package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), USD)
		require.NoError(t, err)
		assert.Equal(t, "100.5000", m.StringFixed())
		assert.Equal(t, USD, m.Currency())
	})

	t.Run("empty currency rejected", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(1), "")
		assert.Error(t, err)
	})

	t.Run("rounds to ledger scale half-up", func(t *testing.T) {
		m, err := NewMoney(decimal.RequireFromString("1.00005"), USD)
		require.NoError(t, err)
		assert.Equal(t, "1.0001", m.StringFixed())
	})
}

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"integer", "2500", "2500.0000", false},
		{"four decimals", "2500.1234", "2500.1234", false},
		{"excess precision rounds half-up", "0.99995", "1.0000", false},
		{"negative allowed", "-10.50", "-10.5000", false},
		{"garbage", "ten dollars", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMoneyFromString(tc.input, USD)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.StringFixed())
		})
	}
}

func TestMoney_Add(t *testing.T) {
	a, _ := NewMoneyUSDFromString("2500.0000")
	b, _ := NewMoneyUSDFromString("1000.0000")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "3500.0000", sum.StringFixed())

	t.Run("currency mismatch", func(t *testing.T) {
		eur, _ := NewMoneyFromString("1", EUR)
		_, err := a.Add(eur)
		assert.Error(t, err)
	})
}

func TestMoney_Subtract(t *testing.T) {
	a, _ := NewMoneyUSDFromString("2500.0000")
	b, _ := NewMoneyUSDFromString("1000.0000")

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "1500.0000", diff.StringFixed())

	t.Run("can go negative", func(t *testing.T) {
		over, err := b.Subtract(a)
		require.NoError(t, err)
		assert.True(t, over.IsNegative())
		assert.Equal(t, "-1500.0000", over.StringFixed())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	small, _ := NewMoneyUSDFromString("10")
	big, _ := NewMoneyUSDFromString("20")

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, small.Equals(small))
	assert.False(t, small.Equals(big))
}

func TestMoney_SignPredicates(t *testing.T) {
	pos, _ := NewMoneyUSDFromString("0.0001")
	neg := pos.Negate()

	assert.True(t, pos.IsPositive())
	assert.True(t, neg.IsNegative())
	assert.True(t, ZeroUSD().IsZero())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m, _ := NewMoneyUSDFromString("2500.0000")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"2500.0000","currency":"USD"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoney_UnmarshalJSON_DefaultsCurrency(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"5.00"}`), &m))
	assert.Equal(t, DefaultCurrency, m.Currency())
}

func TestMoney_Scan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("1234.5678"))
	assert.Equal(t, "1234.5678", m.StringFixed())
	assert.Equal(t, DefaultCurrency, m.Currency())

	t.Run("nil scans to zero", func(t *testing.T) {
		var z Money
		require.NoError(t, z.Scan(nil))
		assert.True(t, z.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var z Money
		assert.Error(t, z.Scan(42))
	})
}

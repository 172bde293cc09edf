package money_test

import (
	"testing"

	"github.com/diegorozoc/million/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	m, err := money.New(500000.00, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(50000000), m.Amount())
	assert.Equal(t, money.USD, m.CurrencyCode())
	assert.InDelta(t, 500000.00, m.AmountFloat(), 0.0001)
}

func TestNewRejectsInvalidCurrency(t *testing.T) {
	t.Parallel()
	for _, code := range []string{"", "US", "usd", "DOLLARS"} {
		_, err := money.New(10, code)
		assert.ErrorIs(t, err, money.ErrInvalidCurrency, "code %q", code)
	}
}

func TestNewRejectsExcessDecimals(t *testing.T) {
	t.Parallel()
	_, err := money.New(10.123, "USD")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	// JPY has zero decimal places.
	_, err = money.New(10.5, "JPY")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestShortestDecimalInterpretation(t *testing.T) {
	t.Parallel()
	// 0.1 is not exactly representable in binary; the decimal reading must win.
	m, err := money.New(0.1, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(10), m.Amount())
}

func TestSubtract(t *testing.T) {
	t.Parallel()
	a := money.Must(600000, "USD")
	b := money.Must(45000, "USD")

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, money.Must(555000, "USD").Amount(), diff.Amount())

	_, err = a.Subtract(money.Must(1, "EUR"))
	assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
}

func TestPercent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		amount     float64
		percentage float64
		want       float64
	}{
		{"zero percent", 500000, 0, 0},
		{"full amount", 500000, 100, 500000},
		{"typical tax", 500000, 7.5, 37500},
		{"half percent", 1000, 0.5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := money.Must(tt.amount, "USD")
			got, err := m.Percent(tt.percentage)
			require.NoError(t, err)
			assert.True(t, got.Equals(money.Must(tt.want, "USD")),
				"got %s want %v", got, tt.want)
		})
	}
}

func TestPercentOutOfRange(t *testing.T) {
	t.Parallel()
	m := money.Must(100, "USD")
	for _, p := range []float64{-0.01, 100.01, 200} {
		_, err := m.Percent(p)
		assert.ErrorIs(t, err, money.ErrInvalidPercentage, "percentage %v", p)
	}
}

func TestEquals(t *testing.T) {
	t.Parallel()
	assert.True(t, money.Must(10, "USD").Equals(money.Must(10, "USD")))
	assert.False(t, money.Must(10, "USD").Equals(money.Must(10, "EUR")))
	assert.False(t, money.Must(10, "USD").Equals(money.Must(11, "USD")))
	assert.False(t, money.Must(10, "USD").Equals(nil))
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "500000.00 USD", money.Must(500000, "USD").String())
	assert.Equal(t, "1200 JPY", money.Must(1200, "JPY").String())
}

package property_test

import (
	"testing"

	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceDerivesTaxAmount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		value         float64
		taxPercentage float64
		wantTax       float64
	}{
		{"no tax", 100000, 0, 0},
		{"typical tax", 500000, 7.5, 37500},
		{"full tax", 250000, 100, 250000},
		{"integer tax", 300000, 10, 30000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := property.NewTrace(uuid.New(), money.Must(tt.value, "USD"), tt.taxPercentage)
			require.NoError(t, err)
			assert.True(t, tr.TaxAmount.Equals(money.Must(tt.wantTax, "USD")),
				"tax amount %s, want %v", tr.TaxAmount, tt.wantTax)
			assert.Equal(t, money.USD, tr.TaxAmount.CurrencyCode())
		})
	}
}

func TestNewTraceValidation(t *testing.T) {
	t.Parallel()
	value := money.Must(100000, "USD")

	_, err := property.NewTrace(uuid.Nil, value, 10)
	assert.ErrorIs(t, err, property.ErrPropertyIDEmpty)

	_, err = property.NewTrace(uuid.New(), nil, 10)
	assert.ErrorIs(t, err, property.ErrNilPrice)

	for _, pct := range []float64{-0.5, 100.5} {
		_, err = property.NewTrace(uuid.New(), value, pct)
		assert.ErrorIs(t, err, property.ErrTaxPercentageOutOfRange, "percentage %v", pct)
	}
}

func TestNewTraceRaisesSingleTraceAddedEvent(t *testing.T) {
	t.Parallel()
	propertyID := uuid.New()
	tr, err := property.NewTrace(propertyID, money.Must(100000, "USD"), 5)
	require.NoError(t, err)

	events := tr.DomainEvents()
	require.Len(t, events, 1)
	added, ok := events[0].(property.TraceAdded)
	require.True(t, ok)
	assert.Equal(t, propertyID, added.PropertyID)
	assert.Equal(t, tr.ID, added.TraceID)
	assert.Equal(t, tr.DateSale, added.SaleDate)
	assert.InDelta(t, 5.0, added.TaxPercentage, 0)
}

func TestNetValue(t *testing.T) {
	t.Parallel()
	tr, err := property.NewTrace(uuid.New(), money.Must(500000, "USD"), 7.5)
	require.NoError(t, err)

	net, err := tr.NetValue()
	require.NoError(t, err)
	assert.True(t, net.Equals(money.Must(462500, "USD")), "net %s", net)
}

func TestTraceQueriesOnRecencyAndTax(t *testing.T) {
	t.Parallel()
	tr, err := property.NewTrace(uuid.New(), money.Must(100000, "USD"), 6)
	require.NoError(t, err)

	assert.True(t, tr.IsRecentSale(30))
	assert.True(t, tr.HasSignificantTax(5))
	assert.False(t, tr.HasSignificantTax(6.5))
}

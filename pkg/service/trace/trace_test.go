package trace_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/diegorozoc/million/internal/fixtures"
	"github.com/diegorozoc/million/pkg/domain/common"
	"github.com/diegorozoc/million/pkg/domain/owner"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/repository"
	tracesvc "github.com/diegorozoc/million/pkg/service/trace"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	traces     *fixtures.TraceRepository
	properties *fixtures.PropertyRepository
	events     *fixtures.RecordingDispatcher
	svc        *tracesvc.Service
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		traces:     fixtures.NewTraceRepository(),
		properties: fixtures.NewPropertyRepository(),
		events:     fixtures.NewRecordingDispatcher(),
	}
	w.svc = tracesvc.NewService(
		w.traces, w.properties, w.events, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return w
}

func (w *world) seedProperty(t *testing.T) *propertydomain.Property {
	t.Helper()
	birthDate, err := common.NewDateOfBirth(time.Now().UTC().AddDate(-30, 0, 0))
	require.NoError(t, err)
	o, err := owner.New(
		"Jane Smith",
		common.MustAddress("456 Ocean Drive", "Miami", "33101", "USA"),
		birthDate,
		"",
	)
	require.NoError(t, err)
	p, err := propertydomain.New(
		"Luxury Downtown Apartment",
		common.MustAddress("123 Main Street", "Miami", "33101", "USA"),
		money.Must(500000, "USD"),
		"PROP-001",
		2020,
		o,
	)
	require.NoError(t, err)
	p.ClearDomainEvents()
	require.NoError(t, w.properties.Save(context.Background(), p))
	return p
}

func TestRecordSale(t *testing.T) {
	t.Parallel()

	t.Run("saves the trace and dispatches its event", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		p := w.seedProperty(t)

		tr, err := w.svc.RecordSale(context.Background(), p.ID, 520000, "USD", 7.5)
		require.NoError(t, err)
		assert.True(t, tr.TaxAmount.Equals(money.Must(39000, "USD")))
		assert.Empty(t, tr.DomainEvents())

		stored, err := w.traces.GetByID(context.Background(), tr.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, stored.PropertyID)

		dispatched := w.events.EventsOfType(propertydomain.EventTypeTraceAdded)
		require.Len(t, dispatched, 1)
		added := dispatched[0].(propertydomain.TraceAdded)
		assert.Equal(t, tr.ID, added.TraceID)
	})

	t.Run("unknown property rejected", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		_, err := w.svc.RecordSale(context.Background(), uuid.New(), 100, "USD", 0)
		require.ErrorIs(t, err, propertydomain.ErrNotFound)
		assert.Empty(t, w.events.Events())
	})

	t.Run("invalid tax percentage rejected", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		p := w.seedProperty(t)
		_, err := w.svc.RecordSale(context.Background(), p.ID, 100, "USD", 101)
		require.ErrorIs(t, err, propertydomain.ErrTaxPercentageOutOfRange)
	})
}

func TestSaleHistory(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	p := w.seedProperty(t)

	first, err := w.svc.RecordSale(context.Background(), p.ID, 400000, "USD", 5)
	require.NoError(t, err)
	second, err := w.svc.RecordSale(context.Background(), p.ID, 450000, "USD", 5)
	require.NoError(t, err)
	// Force distinct sale instants; RecordSale stamps time.Now.
	first.DateSale = second.DateSale.Add(-time.Hour)

	history, err := w.svc.ListByProperty(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)

	latest, err := w.svc.LatestSale(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestLatestSaleWithoutHistory(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	_, err := w.svc.LatestSale(context.Background(), uuid.New())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStatisticsByProperty(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	p := w.seedProperty(t)

	stats, err := w.svc.StatisticsByProperty(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, stats.HasSales)
	assert.Zero(t, stats.SaleCount)

	_, err = w.svc.RecordSale(context.Background(), p.ID, 400000, "USD", 5)
	require.NoError(t, err)
	_, err = w.svc.RecordSale(context.Background(), p.ID, 500000, "USD", 5)
	require.NoError(t, err)

	stats, err = w.svc.StatisticsByProperty(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, stats.HasSales)
	assert.Equal(t, 2, stats.SaleCount)
	assert.InDelta(t, 450000, stats.AverageValue, 0.01)
}

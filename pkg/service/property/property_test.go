package property_test

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
	propertysvc "github.com/diegorozoc/million/pkg/service/property"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	properties *fixtures.PropertyRepository
	owners     *fixtures.OwnerRepository
	images     *fixtures.ImageRepository
	traces     *fixtures.TraceRepository
	events     *fixtures.RecordingDispatcher
	svc        *propertysvc.Service
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		properties: fixtures.NewPropertyRepository(),
		owners:     fixtures.NewOwnerRepository(),
		images:     fixtures.NewImageRepository(),
		traces:     fixtures.NewTraceRepository(),
		events:     fixtures.NewRecordingDispatcher(),
	}
	w.svc = propertysvc.NewService(
		w.properties, w.owners, w.images, w.traces, w.events,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return w
}

func (w *world) seedOwner(t *testing.T, name string, yearsOld int) *owner.Owner {
	t.Helper()
	birthDate, err := common.NewDateOfBirth(
		time.Now().UTC().AddDate(-yearsOld, 0, 0))
	require.NoError(t, err)
	o, err := owner.New(
		name,
		common.MustAddress("456 Ocean Drive", "Miami", "33101", "USA"),
		birthDate,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, w.owners.Save(context.Background(), o))
	return o
}

func createInput(ownerID uuid.UUID) propertysvc.CreateInput {
	return propertysvc.CreateInput{
		Name:         "Luxury Downtown Apartment",
		Street:       "123 Main Street",
		City:         "Miami",
		PostalCode:   "33101",
		Country:      "USA",
		Price:        500000,
		CurrencyCode: "USD",
		CodeInternal: "PROP-001",
		Year:         2020,
		OwnerID:      ownerID,
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("persists, links owner, dispatches and clears the creation event", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		o := w.seedOwner(t, "Jane Smith", 30)

		p, err := w.svc.Create(context.Background(), createInput(o.ID))
		require.NoError(t, err)

		stored, err := w.properties.GetByID(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, o.ID, stored.OwnerID)
		assert.True(t, o.OwnsProperty(p.ID))
		assert.Empty(t, p.DomainEvents(), "buffer cleared after dispatch")

		dispatched := w.events.EventsOfType(propertydomain.EventTypeCreated)
		require.Len(t, dispatched, 1)
		created := dispatched[0].(propertydomain.Created)
		assert.Equal(t, p.ID, created.PropertyID)
		assert.Equal(t, o.ID, created.OwnerID)
	})

	t.Run("duplicate code internal rejected", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		o := w.seedOwner(t, "Jane Smith", 30)
		_, err := w.svc.Create(context.Background(), createInput(o.ID))
		require.NoError(t, err)

		in := createInput(o.ID)
		in.Name = "Another Listing"
		_, err = w.svc.Create(context.Background(), in)
		require.ErrorIs(t, err, propertysvc.ErrRejected)
		assert.Contains(t, err.Error(), "PROP-001")
	})

	t.Run("minor owner rejected before any write", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		minor := w.seedOwner(t, "Kid", 15)

		_, err := w.svc.Create(context.Background(), createInput(minor.ID))
		require.ErrorIs(t, err, propertysvc.ErrRejected)
		assert.Empty(t, w.events.Events())

		count, err := w.properties.Count(context.Background(),
			propertydomain.NewFilterSpecification(propertydomain.Filter{}))
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		_, err := w.svc.Create(context.Background(), createInput(uuid.New()))
		require.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestChangePrice(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	o := w.seedOwner(t, "Jane Smith", 30)
	p, err := w.svc.Create(context.Background(), createInput(o.ID))
	require.NoError(t, err)

	updated, err := w.svc.ChangePrice(context.Background(), p.ID, 550000, "USD")
	require.NoError(t, err)
	assert.True(t, updated.Price.Equals(money.Must(550000, "USD")))

	dispatched := w.events.EventsOfType(propertydomain.EventTypePriceChanged)
	require.Len(t, dispatched, 1)
	changed := dispatched[0].(propertydomain.PriceChanged)
	assert.Equal(t, p.ID, changed.PropertyID)
	assert.True(t, changed.NewPrice.Equals(money.Must(550000, "USD")))
}

func TestAssignToOwner(t *testing.T) {
	t.Parallel()

	t.Run("transfer relinks both owners", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		seller := w.seedOwner(t, "Seller", 40)
		buyer := w.seedOwner(t, "Buyer", 35)
		p, err := w.svc.Create(context.Background(), createInput(seller.ID))
		require.NoError(t, err)

		require.NoError(t, w.svc.AssignToOwner(context.Background(), p.ID, buyer.ID))
		assert.Equal(t, buyer.ID, p.OwnerID)
		assert.True(t, buyer.OwnsProperty(p.ID))
		assert.False(t, seller.OwnsProperty(p.ID))
	})

	t.Run("full buyer leaves everything untouched", func(t *testing.T) {
		t.Parallel()
		w := newWorld(t)
		seller := w.seedOwner(t, "Seller", 40)
		full := w.seedOwner(t, "Collector", 50)
		for i := 0; i < owner.MaxProperties; i++ {
			require.NoError(t, full.AddProperty(uuid.New()))
		}
		p, err := w.svc.Create(context.Background(), createInput(seller.ID))
		require.NoError(t, err)

		err = w.svc.AssignToOwner(context.Background(), p.ID, full.ID)
		require.ErrorIs(t, err, propertydomain.ErrOwnershipRuleViolated)
		assert.Equal(t, seller.ID, p.OwnerID)
		assert.True(t, seller.OwnsProperty(p.ID))
	})
}

func TestList(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	o := w.seedOwner(t, "Jane Smith", 30)

	seed := []struct {
		name, country string
		year          int
	}{
		{"A", "USA", 2020},
		{"B", "USA", 2021},
		{"C", "Canada", 2019},
	}
	for _, in := range seed {
		create := createInput(o.ID)
		create.Name = in.name
		create.Country = in.country
		create.Year = in.year
		create.CodeInternal = "PROP-" + in.name
		_, err := w.svc.Create(context.Background(), create)
		require.NoError(t, err)
	}

	year := 2020
	got, err := w.svc.List(context.Background(),
		propertydomain.Filter{Country: "USA", Year: &year})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	o := w.seedOwner(t, "Jane Smith", 30)
	p, err := w.svc.Create(context.Background(), createInput(o.ID))
	require.NoError(t, err)

	require.NoError(t, w.svc.Delete(context.Background(), p.ID))
	_, err = w.properties.GetByID(context.Background(), p.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, o.OwnsProperty(p.ID))
}

func TestListImages(t *testing.T) {
	t.Parallel()
	w := newWorld(t)
	o := w.seedOwner(t, "Jane Smith", 30)
	p, err := w.svc.Create(context.Background(), createInput(o.ID))
	require.NoError(t, err)

	front, err := w.svc.AddImage(context.Background(), p.ID, "front.jpg", true)
	require.NoError(t, err)
	back, err := w.svc.AddImage(context.Background(), p.ID, "back.jpg", false)
	require.NoError(t, err)
	w.images.Put(front)
	w.images.Put(back)

	all, err := w.svc.ListImages(context.Background(), p.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	enabled, err := w.svc.ListImages(context.Background(), p.ID, true)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "front.jpg", enabled[0].FileName)

	_, err = w.svc.ListImages(context.Background(), uuid.New(), false)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

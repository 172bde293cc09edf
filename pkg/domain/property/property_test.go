package property_test

import (
	"testing"
	"time"

	"github.com/diegorozoc/million/pkg/domain/common"
	"github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOwner(t *testing.T, yearsOld int) *owner.Owner {
	t.Helper()
	dob, err := common.NewDateOfBirth(time.Now().UTC().AddDate(-yearsOld, 0, 0))
	require.NoError(t, err)
	o, err := owner.New(
		"Jane Smith",
		common.MustAddress("45 Ocean Drive", "Miami", "33139", "USA"),
		dob,
		"",
	)
	require.NoError(t, err)
	return o
}

func newTestProperty(t *testing.T) (*property.Property, *owner.Owner) {
	t.Helper()
	o := newTestOwner(t, 18)
	p, err := property.New(
		"Luxury Downtown Apartment",
		common.MustAddress("123 Main Street", "New York", "10001", "USA"),
		money.Must(500000, "USD"),
		"PROP-001",
		2020,
		o,
	)
	require.NoError(t, err)
	return p, o
}

func TestNewRaisesSingleCreatedEvent(t *testing.T) {
	t.Parallel()
	p, o := newTestProperty(t)

	events := p.DomainEvents()
	require.Len(t, events, 1)

	created, ok := events[0].(property.Created)
	require.True(t, ok, "expected a Created event, got %T", events[0])
	assert.Equal(t, p.ID, created.PropertyID)
	assert.Equal(t, "Luxury Downtown Apartment", created.Name)
	assert.Equal(t, p.Address, created.Address)
	assert.True(t, created.Price.Equals(money.Must(500000, "USD")))
	assert.Equal(t, o.ID, created.OwnerID)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()
	o := newTestOwner(t, 30)
	addr := common.MustAddress("123 Main Street", "New York", "10001", "USA")
	price := money.Must(500000, "USD")

	tests := []struct {
		name    string
		build   func() (*property.Property, error)
		wantErr error
	}{
		{"blank name", func() (*property.Property, error) {
			return property.New("  ", addr, price, "PROP-001", 2020, o)
		}, property.ErrNameEmpty},
		{"blank code internal", func() (*property.Property, error) {
			return property.New("Villa", addr, price, "", 2020, o)
		}, property.ErrCodeInternalEmpty},
		{"year before 1800", func() (*property.Property, error) {
			return property.New("Villa", addr, price, "PROP-001", 1799, o)
		}, property.ErrYearOutOfRange},
		{"year in the future", func() (*property.Property, error) {
			return property.New("Villa", addr, price, "PROP-001", time.Now().Year()+1, o)
		}, property.ErrYearOutOfRange},
		{"nil price", func() (*property.Property, error) {
			return property.New("Villa", addr, nil, "PROP-001", 2020, o)
		}, property.ErrNilPrice},
		{"nil owner", func() (*property.Property, error) {
			return property.New("Villa", addr, price, "PROP-001", 2020, nil)
		}, property.ErrNilOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChangePrice(t *testing.T) {
	t.Parallel()
	p, _ := newTestProperty(t)
	p.ClearDomainEvents()

	newPrice := money.Must(600000, "USD")
	require.NoError(t, p.ChangePrice(newPrice))

	assert.True(t, p.Price.Equals(newPrice))
	assert.NotNil(t, p.UpdatedAt)

	events := p.DomainEvents()
	require.Len(t, events, 1)
	changed, ok := events[0].(property.PriceChanged)
	require.True(t, ok)
	assert.Equal(t, p.ID, changed.PropertyID)
	assert.True(t, changed.NewPrice.Equals(newPrice))
}

func TestChangePriceAppendsOneEventPerCall(t *testing.T) {
	t.Parallel()
	p, _ := newTestProperty(t)
	p.ClearDomainEvents()

	const n = 5
	for i := 1; i <= n; i++ {
		require.NoError(t, p.ChangePrice(money.Must(float64(500000+i), "USD")))
	}
	assert.Len(t, p.DomainEvents(), n)

	p.ClearDomainEvents()
	assert.Empty(t, p.DomainEvents())
	p.ClearDomainEvents() // clearing again stays a no-op
	assert.Empty(t, p.DomainEvents())
}

func TestChangePriceRejectsNil(t *testing.T) {
	t.Parallel()
	p, _ := newTestProperty(t)
	p.ClearDomainEvents()

	assert.ErrorIs(t, p.ChangePrice(nil), property.ErrNilPrice)
	assert.Empty(t, p.DomainEvents(), "a rejected change must not raise an event")
}

func TestUpdateYearRange(t *testing.T) {
	t.Parallel()
	p, _ := newTestProperty(t)

	require.NoError(t, p.UpdateYear(1800))
	assert.Equal(t, 1800, p.Year)

	assert.ErrorIs(t, p.UpdateYear(1799), property.ErrYearOutOfRange)
	assert.Equal(t, 1800, p.Year, "rejected update must not change state")
}

func TestAddImage(t *testing.T) {
	t.Parallel()
	p, _ := newTestProperty(t)

	img, err := p.AddImage("front-view.jpg", true)
	require.NoError(t, err)
	assert.Equal(t, p.ID, img.PropertyID)
	assert.True(t, img.Enabled)
	assert.True(t, img.IsImageFile())
	assert.Equal(t, ".jpg", img.FileExtension())

	assert.True(t, p.HasImages())
	assert.True(t, p.HasActiveImages())

	_, err = p.AddImage("  ", true)
	assert.ErrorIs(t, err, property.ErrFileNameEmpty)
}

func TestImagesReturnsACopy(t *testing.T) {
	t.Parallel()
	p, _ := newTestProperty(t)
	_, err := p.AddImage("a.png", true)
	require.NoError(t, err)

	view := p.Images()
	view[0] = nil
	require.NotNil(t, p.Images()[0])
}

func TestRemoveImage(t *testing.T) {
	t.Parallel()
	p, _ := newTestProperty(t)
	img, err := p.AddImage("a.png", false)
	require.NoError(t, err)

	p.RemoveImage(img.ID)
	assert.False(t, p.HasImages())
	assert.False(t, p.HasActiveImages())
}

func TestImageEnableDisable(t *testing.T) {
	t.Parallel()
	p, _ := newTestProperty(t)
	img, err := p.AddImage("a.png", false)
	require.NoError(t, err)
	require.Nil(t, img.UpdatedAt)

	img.Enable()
	assert.True(t, img.Enabled)
	assert.NotNil(t, img.UpdatedAt)

	img.Disable()
	assert.False(t, img.Enabled)
}

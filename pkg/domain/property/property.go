// Package property contains the Property aggregate root, its owned
// PropertyImage entities, the independent PropertyTrace aggregate, the
// property specifications, and the domain services that enforce
// cross-aggregate business rules.
package property

import (
	"strings"
	"time"

	"github.com/diegorozoc/million/pkg/domain"
	"github.com/diegorozoc/million/pkg/domain/common"
	"github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/google/uuid"
)

// Property is an aggregate root for a real-estate property. Images are owned
// by the property and only created through it; sale traces are a separate
// aggregate (see Trace).
type Property struct {
	domain.AggregateRoot

	ID           uuid.UUID
	Name         string
	Address      common.Address
	Price        *money.Money
	CodeInternal string
	Year         int
	OwnerID      uuid.UUID
	Owner        *owner.Owner
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	images []*Image
}

// New creates a Property, enforcing all invariants atomically and raising a
// single Created event.
func New(
	name string,
	address common.Address,
	price *money.Money,
	codeInternal string,
	year int,
	propertyOwner *owner.Owner,
) (*Property, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameEmpty
	}
	if strings.TrimSpace(codeInternal) == "" {
		return nil, ErrCodeInternalEmpty
	}
	if year < MinYear || year > time.Now().Year() {
		return nil, ErrYearOutOfRange
	}
	if price == nil {
		return nil, ErrNilPrice
	}
	if propertyOwner == nil {
		return nil, ErrNilOwner
	}

	p := &Property{
		ID:           uuid.New(),
		Name:         name,
		Address:      address,
		Price:        price,
		CodeInternal: codeInternal,
		Year:         year,
		CreatedAt:    time.Now().UTC(),
	}
	p.setOwner(propertyOwner)

	p.RaiseDomainEvent(Created{
		BaseEvent:  domain.NewBaseEvent(),
		PropertyID: p.ID,
		Name:       p.Name,
		Address:    p.Address,
		Price:      p.Price,
		OwnerID:    p.OwnerID,
	})
	return p, nil
}

func (p *Property) setOwner(o *owner.Owner) {
	p.Owner = o
	p.OwnerID = o.ID
}

// SetOwner replaces the owner reference. The owner must be non-nil; callers
// that need ownership rules enforced go through OwnershipService.
func (p *Property) SetOwner(o *owner.Owner) error {
	if o == nil {
		return ErrNilOwner
	}
	p.setOwner(o)
	return nil
}

// ChangePrice sets a new price and raises exactly one PriceChanged event.
func (p *Property) ChangePrice(newPrice *money.Money) error {
	if newPrice == nil {
		return ErrNilPrice
	}
	p.Price = newPrice
	p.touch()

	p.RaiseDomainEvent(PriceChanged{
		BaseEvent:  domain.NewBaseEvent(),
		PropertyID: p.ID,
		NewPrice:   newPrice,
	})
	return nil
}

// UpdateName renames the property.
func (p *Property) UpdateName(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrNameEmpty
	}
	p.Name = newName
	p.touch()
	return nil
}

// UpdateAddress replaces the property address.
func (p *Property) UpdateAddress(newAddress common.Address) {
	p.Address = newAddress
	p.touch()
}

// UpdateYear changes the build year, keeping it in range.
func (p *Property) UpdateYear(newYear int) error {
	if newYear < MinYear || newYear > time.Now().Year() {
		return ErrYearOutOfRange
	}
	p.Year = newYear
	p.touch()
	return nil
}

// AddImage creates an image owned by this property and returns it.
func (p *Property) AddImage(fileName string, enabled bool) (*Image, error) {
	img, err := newImage(p.ID, fileName, enabled)
	if err != nil {
		return nil, err
	}
	p.images = append(p.images, img)
	p.touch()
	return img, nil
}

// RemoveImage detaches an image by id. Removing an unknown id is a no-op.
func (p *Property) RemoveImage(imageID uuid.UUID) {
	for i, img := range p.images {
		if img.ID == imageID {
			p.images = append(p.images[:i], p.images[i+1:]...)
			p.touch()
			return
		}
	}
}

// Images returns the owned images in insertion order. The returned slice is a
// copy; the backing store is never aliased.
func (p *Property) Images() []*Image {
	out := make([]*Image, len(p.images))
	copy(out, p.images)
	return out
}

// HasImages reports whether the property has any image.
func (p *Property) HasImages() bool { return len(p.images) > 0 }

// HasActiveImages reports whether any image is enabled.
func (p *Property) HasActiveImages() bool {
	for _, img := range p.images {
		if img.Enabled {
			return true
		}
	}
	return false
}

func (p *Property) touch() {
	now := time.Now().UTC()
	p.UpdatedAt = &now
}

// Hydrate rebuilds a Property from persisted state, bypassing factory
// validation and raising no events. Repository use only.
func Hydrate(
	id uuid.UUID,
	name string,
	address common.Address,
	price *money.Money,
	codeInternal string,
	year int,
	propertyOwner *owner.Owner,
	images []*Image,
	createdAt time.Time,
	updatedAt *time.Time,
) *Property {
	imgs := make([]*Image, len(images))
	copy(imgs, images)
	p := &Property{
		ID:           id,
		Name:         name,
		Address:      address,
		Price:        price,
		CodeInternal: codeInternal,
		Year:         year,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		images:       imgs,
	}
	if propertyOwner != nil {
		p.setOwner(propertyOwner)
	}
	return p
}

// Package owner contains the Owner aggregate root.
package owner

import (
	"errors"
	"strings"
	"time"

	"github.com/diegorozoc/million/pkg/domain"
	"github.com/diegorozoc/million/pkg/domain/common"
	"github.com/google/uuid"
)

// MaxProperties is the largest number of properties a single owner may hold.
const MaxProperties = 10

var (
	// ErrNameEmpty is returned when an owner name is blank.
	ErrNameEmpty = errors.New("owner name cannot be empty")
	// ErrPropertyIDEmpty is returned when a nil property id is linked to an owner.
	ErrPropertyIDEmpty = errors.New("property id cannot be empty")
	// ErrNotFound is returned when an owner cannot be found.
	ErrNotFound = errors.New("owner not found")
)

// Owner is an aggregate root holding the identity of a property owner and the
// ordered set of property ids they hold. The set changes only through
// AddProperty and RemoveProperty.
type Owner struct {
	domain.AggregateRoot

	ID          uuid.UUID
	Name        string
	Address     common.Address
	DateOfBirth common.DateOfBirth
	PhotoURL    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	propertyIDs []uuid.UUID
}

// New creates an Owner, enforcing all invariants. photoURL may be empty.
func New(name string, address common.Address, dateOfBirth common.DateOfBirth, photoURL string) (*Owner, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameEmpty
	}
	return &Owner{
		ID:          uuid.New(),
		Name:        name,
		Address:     address,
		DateOfBirth: dateOfBirth,
		PhotoURL:    photoURL,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// UpdateName renames the owner.
func (o *Owner) UpdateName(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrNameEmpty
	}
	o.Name = newName
	o.touch()
	return nil
}

// UpdateAddress replaces the owner's address.
func (o *Owner) UpdateAddress(newAddress common.Address) {
	o.Address = newAddress
	o.touch()
}

// UpdatePhoto replaces the photo URL; an empty string clears it.
func (o *Owner) UpdatePhoto(newPhotoURL string) {
	o.PhotoURL = newPhotoURL
	o.touch()
}

// AddProperty links a property id to the owner. Adding an id that is already
// linked is a no-op.
func (o *Owner) AddProperty(propertyID uuid.UUID) error {
	if propertyID == uuid.Nil {
		return ErrPropertyIDEmpty
	}
	for _, id := range o.propertyIDs {
		if id == propertyID {
			return nil
		}
	}
	o.propertyIDs = append(o.propertyIDs, propertyID)
	o.touch()
	return nil
}

// RemoveProperty unlinks a property id. Removing an absent id is a no-op.
func (o *Owner) RemoveProperty(propertyID uuid.UUID) {
	for i, id := range o.propertyIDs {
		if id == propertyID {
			o.propertyIDs = append(o.propertyIDs[:i], o.propertyIDs[i+1:]...)
			o.touch()
			return
		}
	}
}

// PropertyIDs returns the linked property ids in insertion order. The returned
// slice is a copy.
func (o *Owner) PropertyIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(o.propertyIDs))
	copy(out, o.propertyIDs)
	return out
}

// OwnsProperty reports whether the given property id is linked.
func (o *Owner) OwnsProperty(propertyID uuid.UUID) bool {
	for _, id := range o.propertyIDs {
		if id == propertyID {
			return true
		}
	}
	return false
}

// HasProperties reports whether the owner holds any property.
func (o *Owner) HasProperties() bool { return len(o.propertyIDs) > 0 }

// PropertyCount returns the number of linked properties.
func (o *Owner) PropertyCount() int { return len(o.propertyIDs) }

// CanOwnMoreProperties reports whether the owner is below the ownership cap.
func (o *Owner) CanOwnMoreProperties() bool {
	return len(o.propertyIDs) < MaxProperties
}

// IsAdult reports whether the owner is at least 18 years old.
func (o *Owner) IsAdult() bool { return o.DateOfBirth.IsAdult() }

// Age returns the owner's age in whole years.
func (o *Owner) Age() int { return o.DateOfBirth.Age() }

func (o *Owner) touch() {
	now := time.Now().UTC()
	o.UpdatedAt = &now
}

// Hydrate rebuilds an Owner from persisted state, bypassing factory validation.
// Repository use only.
func Hydrate(
	id uuid.UUID,
	name string,
	address common.Address,
	dateOfBirth common.DateOfBirth,
	photoURL string,
	propertyIDs []uuid.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
) *Owner {
	ids := make([]uuid.UUID, len(propertyIDs))
	copy(ids, propertyIDs)
	return &Owner{
		ID:          id,
		Name:        name,
		Address:     address,
		DateOfBirth: dateOfBirth,
		PhotoURL:    photoURL,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		propertyIDs: ids,
	}
}

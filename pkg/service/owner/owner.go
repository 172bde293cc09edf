// Package owner orchestrates the owner use cases.
package owner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/diegorozoc/million/pkg/domain/common"
	"github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/google/uuid"
)

// ErrHasProperties rejects deleting an owner who still holds properties.
var ErrHasProperties = errors.New("owner still holds properties")

// Service provides the owner use cases.
type Service struct {
	owners repository.OwnerRepository
	logger *slog.Logger
}

// NewService builds the owner service.
func NewService(owners repository.OwnerRepository, logger *slog.Logger) *Service {
	return &Service{owners: owners, logger: logger}
}

// CreateInput carries everything needed to register an owner.
type CreateInput struct {
	Name       string
	Street     string
	City       string
	PostalCode string
	Country    string
	BirthDate  time.Time
	PhotoURL   string
}

// Create registers a new owner.
func (s *Service) Create(ctx context.Context, in CreateInput) (*owner.Owner, error) {
	address, err := common.NewAddress(in.Street, in.City, in.PostalCode, in.Country)
	if err != nil {
		return nil, err
	}
	birthDate, err := common.NewDateOfBirth(in.BirthDate)
	if err != nil {
		return nil, err
	}
	o, err := owner.New(in.Name, address, birthDate, in.PhotoURL)
	if err != nil {
		return nil, err
	}
	if err := s.owners.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("saving owner: %w", err)
	}
	s.logger.Info("owner registered", "owner_id", o.ID, "name", o.Name)
	return o, nil
}

// GetByID returns a single owner.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	return s.owners.GetByID(ctx, id)
}

// GetAll returns every registered owner.
func (s *Service) GetAll(ctx context.Context) ([]*owner.Owner, error) {
	return s.owners.GetAll(ctx)
}

// Search returns the owners matching the filter, ordered by name.
func (s *Service) Search(ctx context.Context, f owner.Filter) ([]*owner.Owner, error) {
	return s.owners.Find(ctx, owner.NewFilterSpecification(f))
}

// UpdateInput carries the optional profile updates; nil fields are untouched.
type UpdateInput struct {
	Name     *string
	PhotoURL *string
}

// Update applies profile changes to the owner.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*owner.Owner, error) {
	o, err := s.owners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := o.UpdateName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.PhotoURL != nil {
		o.UpdatePhoto(*in.PhotoURL)
	}
	if err := s.owners.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("saving owner: %w", err)
	}
	return o, nil
}

// Delete removes the owner. Owners still holding properties cannot be
// deleted; transfer or delete the properties first.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	o, err := s.owners.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.HasProperties() {
		return fmt.Errorf("%w: owner %q holds %d", ErrHasProperties, o.Name, o.PropertyCount())
	}
	return s.owners.Delete(ctx, id)
}

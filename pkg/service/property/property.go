// Package property orchestrates the property use cases: it runs the domain
// rules, persists the aggregates, and publishes the buffered domain events
// after a successful save.
package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/diegorozoc/million/pkg/dispatcher"
	"github.com/diegorozoc/million/pkg/domain/common"
	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/google/uuid"
)

// ErrRejected marks a request turned down by a business rule. The wrapped
// message carries the human-readable reason.
var ErrRejected = errors.New("request rejected by business rule")

// Service provides the property use cases.
type Service struct {
	properties repository.PropertyRepository
	owners     repository.OwnerRepository
	images     repository.ImageRepository
	traces     repository.TraceRepository
	validation *property.ValidationService
	ownership  *property.OwnershipService
	events     dispatcher.EventDispatcher
	logger     *slog.Logger
}

// NewService builds the property service. The validation service is derived
// from the property repository's code lookup.
func NewService(
	properties repository.PropertyRepository,
	owners repository.OwnerRepository,
	images repository.ImageRepository,
	traces repository.TraceRepository,
	events dispatcher.EventDispatcher,
	logger *slog.Logger,
) *Service {
	return &Service{
		properties: properties,
		owners:     owners,
		images:     images,
		traces:     traces,
		validation: property.NewValidationService(properties),
		ownership:  property.NewOwnershipService(),
		events:     events,
		logger:     logger,
	}
}

// CreateInput carries everything needed to list a new property.
type CreateInput struct {
	Name         string
	Street       string
	City         string
	PostalCode   string
	Country      string
	Price        float64
	CurrencyCode string
	CodeInternal string
	Year         int
	OwnerID      uuid.UUID
}

// Create lists a new property for the given owner. Creation-time business
// rules run first, then the ownership rules; the property and the owner are
// saved together and the buffered events are dispatched after the save.
func (s *Service) Create(ctx context.Context, in CreateInput) (*property.Property, error) {
	result, err := s.validation.ValidatePropertyForCreation(ctx, in.Name, in.CodeInternal, in.Year)
	if err != nil {
		return nil, err
	}
	if !result.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrRejected, result.Reason())
	}

	o, err := s.owners.GetByID(ctx, in.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("loading owner: %w", err)
	}
	if result := s.ownership.ValidateOwnerCanAcquireProperty(o); !result.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrRejected, result.Reason())
	}

	address, err := common.NewAddress(in.Street, in.City, in.PostalCode, in.Country)
	if err != nil {
		return nil, err
	}
	price, err := money.New(in.Price, in.CurrencyCode)
	if err != nil {
		return nil, err
	}

	p, err := property.New(in.Name, address, price, in.CodeInternal, in.Year, o)
	if err != nil {
		return nil, err
	}
	if err := o.AddProperty(p.ID); err != nil {
		return nil, err
	}

	if err := s.properties.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving property: %w", err)
	}
	if err := s.owners.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("saving owner: %w", err)
	}

	return p, s.publish(ctx, p)
}

// ChangePrice sets a new asking price on the property.
func (s *Service) ChangePrice(
	ctx context.Context, id uuid.UUID, newPrice float64, currencyCode string,
) (*property.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	price, err := money.New(newPrice, currencyCode)
	if err != nil {
		return nil, err
	}
	if err := p.ChangePrice(price); err != nil {
		return nil, err
	}
	if err := s.properties.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving property: %w", err)
	}
	return p, s.publish(ctx, p)
}

// UpdateInput carries the optional detail updates; nil fields are untouched.
type UpdateInput struct {
	Name    *string
	Year    *int
	Address *AddressInput
}

// AddressInput is a full replacement address; partial address updates are not
// supported.
type AddressInput struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// Update applies detail changes to the property.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*property.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := p.UpdateName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Year != nil {
		if err := p.UpdateYear(*in.Year); err != nil {
			return nil, err
		}
	}
	if in.Address != nil {
		address, err := common.NewAddress(
			in.Address.Street, in.Address.City, in.Address.PostalCode, in.Address.Country)
		if err != nil {
			return nil, err
		}
		p.UpdateAddress(address)
	}
	if err := s.properties.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving property: %w", err)
	}
	return p, s.publish(ctx, p)
}

// AssignToOwner transfers the property to another owner, keeping both sides
// of the relationship in step and releasing the previous owner's link.
func (s *Service) AssignToOwner(ctx context.Context, propertyID, ownerID uuid.UUID) error {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	next, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("loading owner: %w", err)
	}

	previousOwnerID := p.OwnerID
	if err := s.ownership.AssignPropertyToOwner(p, next); err != nil {
		return err
	}

	if previousOwnerID != uuid.Nil && previousOwnerID != next.ID {
		previous, err := s.owners.GetByID(ctx, previousOwnerID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.logger.Warn("previous owner missing during transfer",
				"property_id", propertyID, "owner_id", previousOwnerID)
		case err != nil:
			return fmt.Errorf("loading previous owner: %w", err)
		default:
			previous.RemoveProperty(p.ID)
			if err := s.owners.Save(ctx, previous); err != nil {
				return fmt.Errorf("saving previous owner: %w", err)
			}
		}
	}

	if err := s.properties.Save(ctx, p); err != nil {
		return fmt.Errorf("saving property: %w", err)
	}
	if err := s.owners.Save(ctx, next); err != nil {
		return fmt.Errorf("saving owner: %w", err)
	}
	return s.publish(ctx, p)
}

// AddImage attaches a photo to the property.
func (s *Service) AddImage(
	ctx context.Context, propertyID uuid.UUID, fileName string, enabled bool,
) (*property.Image, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	img, err := p.AddImage(fileName, enabled)
	if err != nil {
		return nil, err
	}
	if err := s.properties.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving property: %w", err)
	}
	return img, nil
}

// ListImages returns the property's gallery, optionally narrowed to enabled
// images only.
func (s *Service) ListImages(
	ctx context.Context, propertyID uuid.UUID, enabledOnly bool,
) ([]*property.Image, error) {
	exists, err := s.properties.Exists(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("checking property: %w", err)
	}
	if !exists {
		return nil, repository.ErrNotFound
	}
	if enabledOnly {
		return s.images.GetEnabledByProperty(ctx, propertyID)
	}
	return s.images.GetByProperty(ctx, propertyID)
}

// GetByID returns a single property.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	return s.properties.GetByID(ctx, id)
}

// GetByCodeInternal returns the property carrying the internal code.
func (s *Service) GetByCodeInternal(ctx context.Context, codeInternal string) (*property.Property, error) {
	return s.properties.FindOne(ctx, property.NewByCodeInternalSpecification(codeInternal))
}

// List returns the properties matching the filter.
func (s *Service) List(ctx context.Context, filter property.Filter) ([]*property.Property, error) {
	return s.properties.Find(ctx, property.NewFilterSpecification(filter))
}

// Delete removes the property, its sale traces, and the link from its owner.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.traces.DeleteByProperty(ctx, id); err != nil {
		return fmt.Errorf("deleting sale traces: %w", err)
	}
	if p.OwnerID != uuid.Nil {
		o, err := s.owners.GetByID(ctx, p.OwnerID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.logger.Warn("owner missing during property delete",
				"property_id", id, "owner_id", p.OwnerID)
		case err != nil:
			return fmt.Errorf("loading owner: %w", err)
		default:
			o.RemoveProperty(id)
			if err := s.owners.Save(ctx, o); err != nil {
				return fmt.Errorf("saving owner: %w", err)
			}
		}
	}
	return s.properties.Delete(ctx, id)
}

// publish dispatches the aggregate's buffered events and clears the buffer.
// The buffer is cleared even when a handler fails; the events were dispatched
// and must not be replayed on the next save.
func (s *Service) publish(ctx context.Context, p *property.Property) error {
	events := p.DomainEvents()
	p.ClearDomainEvents()
	if err := s.events.DispatchMany(ctx, events); err != nil {
		s.logger.Error("dispatching property events", "error", err, "property_id", p.ID)
		return err
	}
	return nil
}

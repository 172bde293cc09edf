// Package repository declares the persistence contracts the domain depends
// on. Implementations live under infra/repository; tests use the in-memory
// fixtures.
package repository

import (
	"context"
	"errors"

	"github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/specification"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup by id or criteria matches nothing.
var ErrNotFound = errors.New("entity not found")

// PropertyRepository persists Property aggregates and answers
// specification-driven queries over them.
type PropertyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	Find(ctx context.Context, spec specification.Specification[*property.Property]) ([]*property.Property, error)
	FindOne(ctx context.Context, spec specification.Specification[*property.Property]) (*property.Property, error)
	Count(ctx context.Context, spec specification.Specification[*property.Property]) (int, error)
	Save(ctx context.Context, p *property.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	CodeInternalExists(ctx context.Context, codeInternal string) (bool, error)
}

// OwnerRepository persists Owner aggregates.
type OwnerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*owner.Owner, error)
	GetAll(ctx context.Context) ([]*owner.Owner, error)
	Find(ctx context.Context, spec specification.Specification[*owner.Owner]) ([]*owner.Owner, error)
	Save(ctx context.Context, o *owner.Owner) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ImageRepository serves gallery queries over property images.
type ImageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*property.Image, error)
	GetByProperty(ctx context.Context, propertyID uuid.UUID) ([]*property.Image, error)
	GetEnabledByProperty(ctx context.Context, propertyID uuid.UUID) ([]*property.Image, error)
}

// TraceRepository persists sale traces and serves their aggregate statistics.
type TraceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*property.Trace, error)
	Find(ctx context.Context, spec specification.Specification[*property.Trace]) ([]*property.Trace, error)
	FindOne(ctx context.Context, spec specification.Specification[*property.Trace]) (*property.Trace, error)
	Save(ctx context.Context, tr *property.Trace) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProperty(ctx context.Context, propertyID uuid.UUID) error
	HasTraces(ctx context.Context, propertyID uuid.UUID) (bool, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int, error)
	AverageValueByProperty(ctx context.Context, propertyID uuid.UUID) (float64, error)
}

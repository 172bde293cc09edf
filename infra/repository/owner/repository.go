// Package owner is the PostgreSQL implementation of the owner repository.
package owner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorozoc/million/infra/repository/model"
	"github.com/diegorozoc/million/pkg/domain/common"
	ownerdomain "github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/diegorozoc/million/pkg/specification"
)

type repo struct {
	db *gorm.DB
}

// New creates the PostgreSQL owner repository.
func New(db *gorm.DB) repository.OwnerRepository {
	return &repo{db: db}
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*ownerdomain.Owner, error) {
	var m model.Owner
	err := r.db.WithContext(ctx).
		Preload("Properties").
		First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(&m)
}

func (r *repo) GetAll(ctx context.Context) ([]*ownerdomain.Owner, error) {
	var models []model.Owner
	err := r.db.WithContext(ctx).
		Preload("Properties").
		Order("name asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	owners := make([]*ownerdomain.Owner, 0, len(models))
	for i := range models {
		o, err := toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, nil
}

func (r *repo) Find(
	ctx context.Context, spec specification.Specification[*ownerdomain.Owner],
) ([]*ownerdomain.Owner, error) {
	var models []model.Owner
	err := r.db.WithContext(ctx).
		Preload("Properties").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	owners := make([]*ownerdomain.Owner, 0, len(models))
	for i := range models {
		o, err := toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return specification.Evaluate(owners, spec), nil
}

func (r *repo) Save(ctx context.Context, o *ownerdomain.Owner) error {
	m := toModel(o)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Owner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Owner{}).
		Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func toDomain(m *model.Owner) (*ownerdomain.Owner, error) {
	address, err := common.NewAddress(m.Street, m.City, m.PostalCode, m.Country)
	if err != nil {
		return nil, fmt.Errorf("hydrating owner %s: %w", m.ID, err)
	}
	birthDate, err := common.NewDateOfBirth(m.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("hydrating owner %s: %w", m.ID, err)
	}
	propertyIDs := make([]uuid.UUID, 0, len(m.Properties))
	for i := range m.Properties {
		propertyIDs = append(propertyIDs, m.Properties[i].ID)
	}
	return ownerdomain.Hydrate(
		m.ID, m.Name, address, birthDate, m.PhotoURL,
		propertyIDs, m.CreatedAt, m.UpdatedAt), nil
}

func toModel(o *ownerdomain.Owner) model.Owner {
	return model.Owner{
		ID:         o.ID,
		Name:       o.Name,
		Street:     o.Address.Street(),
		City:       o.Address.City(),
		PostalCode: o.Address.PostalCode(),
		Country:    o.Address.Country(),
		BirthDate:  o.DateOfBirth.Value(),
		PhotoURL:   o.PhotoURL,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

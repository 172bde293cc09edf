// Package property is the PostgreSQL implementation of the property
// repository. Specifications run in two stages: relation names from
// Includes() become Preloads, then the hydrated aggregates go through the
// in-memory evaluator for filtering, ordering and paging.
package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorozoc/million/infra/repository/model"
	"github.com/diegorozoc/million/pkg/domain/common"
	"github.com/diegorozoc/million/pkg/domain/owner"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/diegorozoc/million/pkg/specification"
)

type repo struct {
	db *gorm.DB
}

// New creates the PostgreSQL property repository.
func New(db *gorm.DB) repository.PropertyRepository {
	return &repo{db: db}
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*propertydomain.Property, error) {
	var m model.Property
	err := r.db.WithContext(ctx).
		Preload("Owner").Preload("Images").
		First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(&m)
}

func (r *repo) Find(
	ctx context.Context, spec specification.Specification[*propertydomain.Property],
) ([]*propertydomain.Property, error) {
	q := r.db.WithContext(ctx)
	for _, relation := range spec.Includes() {
		q = q.Preload(relation)
	}
	var models []model.Property
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	properties := make([]*propertydomain.Property, 0, len(models))
	for i := range models {
		p, err := toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return specification.Evaluate(properties, spec), nil
}

func (r *repo) FindOne(
	ctx context.Context, spec specification.Specification[*propertydomain.Property],
) (*propertydomain.Property, error) {
	matches, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, repository.ErrNotFound
	}
	return matches[0], nil
}

func (r *repo) Count(
	ctx context.Context, spec specification.Specification[*propertydomain.Property],
) (int, error) {
	matches, err := r.Find(ctx, withoutPaging[*propertydomain.Property]{spec})
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (r *repo) Save(ctx context.Context, p *propertydomain.Property) error {
	m := toModel(p)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		for _, img := range p.Images() {
			im := imageToModel(img)
			if err := tx.Save(&im).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PropertyImage{}, "property_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Property{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repo) CodeInternalExists(ctx context.Context, codeInternal string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("code_internal = ?", codeInternal).Count(&count).Error
	return count > 0, err
}

// withoutPaging wraps a specification with paging disabled so counts see the
// full filtered set.
type withoutPaging[T any] struct {
	specification.Specification[T]
}

func (withoutPaging[T]) IsPagingEnabled() bool { return false }

func toDomain(m *model.Property) (*propertydomain.Property, error) {
	address, err := common.NewAddress(m.Street, m.City, m.PostalCode, m.Country)
	if err != nil {
		return nil, fmt.Errorf("hydrating property %s: %w", m.ID, err)
	}
	price, err := money.NewFromSmallestUnit(m.PriceAmount, m.PriceCurrency)
	if err != nil {
		return nil, fmt.Errorf("hydrating property %s: %w", m.ID, err)
	}

	var propertyOwner *owner.Owner
	if m.Owner != nil {
		propertyOwner, err = ownerToDomain(m.Owner)
		if err != nil {
			return nil, err
		}
	}
	images := make([]*propertydomain.Image, 0, len(m.Images))
	for i := range m.Images {
		img := &m.Images[i]
		images = append(images, propertydomain.HydrateImage(
			img.ID, img.PropertyID, img.FileName, img.Enabled, img.CreatedAt, img.UpdatedAt))
	}

	p := propertydomain.Hydrate(
		m.ID, m.Name, address, price, m.CodeInternal, m.Year,
		propertyOwner, images, m.CreatedAt, m.UpdatedAt)
	if propertyOwner == nil {
		p.OwnerID = m.OwnerID
	}
	return p, nil
}

func ownerToDomain(m *model.Owner) (*owner.Owner, error) {
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
	return owner.Hydrate(
		m.ID, m.Name, address, birthDate, m.PhotoURL,
		propertyIDs, m.CreatedAt, m.UpdatedAt), nil
}

func toModel(p *propertydomain.Property) model.Property {
	return model.Property{
		ID:            p.ID,
		Name:          p.Name,
		Street:        p.Address.Street(),
		City:          p.Address.City(),
		PostalCode:    p.Address.PostalCode(),
		Country:       p.Address.Country(),
		PriceAmount:   p.Price.Amount(),
		PriceCurrency: p.Price.CurrencyCode().String(),
		CodeInternal:  p.CodeInternal,
		Year:          p.Year,
		OwnerID:       p.OwnerID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func imageToModel(img *propertydomain.Image) model.PropertyImage {
	return model.PropertyImage{
		ID:         img.ID,
		PropertyID: img.PropertyID,
		FileName:   img.FileName,
		Enabled:    img.Enabled,
		CreatedAt:  img.CreatedAt,
		UpdatedAt:  img.UpdatedAt,
	}
}

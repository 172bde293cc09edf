// Package image is the PostgreSQL implementation of the image repository.
// Writes go through the property aggregate; this repository only serves
// gallery reads.
package image

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorozoc/million/infra/repository/model"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates the PostgreSQL image repository.
func New(db *gorm.DB) repository.ImageRepository {
	return &repo{db: db}
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*propertydomain.Image, error) {
	var m model.PropertyImage
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(&m), nil
}

func (r *repo) GetByProperty(ctx context.Context, propertyID uuid.UUID) ([]*propertydomain.Image, error) {
	return find(r.db.WithContext(ctx).Where("property_id = ?", propertyID))
}

func (r *repo) GetEnabledByProperty(ctx context.Context, propertyID uuid.UUID) ([]*propertydomain.Image, error) {
	return find(r.db.WithContext(ctx).Where("property_id = ? AND enabled = ?", propertyID, true))
}

func find(q *gorm.DB) ([]*propertydomain.Image, error) {
	var models []model.PropertyImage
	if err := q.Order("created_at asc").Find(&models).Error; err != nil {
		return nil, err
	}
	images := make([]*propertydomain.Image, 0, len(models))
	for i := range models {
		images = append(images, toDomain(&models[i]))
	}
	return images, nil
}

func toDomain(m *model.PropertyImage) *propertydomain.Image {
	return propertydomain.HydrateImage(
		m.ID, m.PropertyID, m.FileName, m.Enabled, m.CreatedAt, m.UpdatedAt)
}

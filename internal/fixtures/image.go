package fixtures

import (
	"context"
	"sync"

	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/google/uuid"
)

// ImageRepository is an in-memory repository.ImageRepository. Seed it with
// Put; images normally reach the store through the property aggregate.
type ImageRepository struct {
	mu     sync.RWMutex
	images map[uuid.UUID]*property.Image
}

// NewImageRepository builds an empty in-memory image repository.
func NewImageRepository() *ImageRepository {
	return &ImageRepository{images: make(map[uuid.UUID]*property.Image)}
}

// Put stores an image directly, bypassing the aggregate.
func (r *ImageRepository) Put(img *property.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[img.ID] = img
}

func (r *ImageRepository) GetByID(_ context.Context, id uuid.UUID) (*property.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return img, nil
}

func (r *ImageRepository) GetByProperty(_ context.Context, propertyID uuid.UUID) ([]*property.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*property.Image
	for _, img := range r.images {
		if img.PropertyID == propertyID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *ImageRepository) GetEnabledByProperty(_ context.Context, propertyID uuid.UUID) ([]*property.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*property.Image
	for _, img := range r.images {
		if img.PropertyID == propertyID && img.Enabled {
			out = append(out, img)
		}
	}
	return out, nil
}

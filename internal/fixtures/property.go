// Package fixtures provides in-memory collaborators for tests: repositories
// backed by maps and a dispatcher that records instead of fanning out.
package fixtures

import (
	"context"
	"sync"

	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/diegorozoc/million/pkg/specification"
	"github.com/google/uuid"
)

// PropertyRepository is an in-memory repository.PropertyRepository.
type PropertyRepository struct {
	mu         sync.RWMutex
	properties map[uuid.UUID]*property.Property
}

// NewPropertyRepository builds an empty in-memory property repository.
func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{properties: make(map[uuid.UUID]*property.Property)}
}

func (r *PropertyRepository) GetByID(_ context.Context, id uuid.UUID) (*property.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.properties[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *PropertyRepository) Find(
	_ context.Context, spec specification.Specification[*property.Property],
) ([]*property.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return specification.Evaluate(r.all(), spec), nil
}

func (r *PropertyRepository) FindOne(
	ctx context.Context, spec specification.Specification[*property.Property],
) (*property.Property, error) {
	matches, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, repository.ErrNotFound
	}
	return matches[0], nil
}

func (r *PropertyRepository) Count(
	_ context.Context, spec specification.Specification[*property.Property],
) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return specification.Count(r.all(), spec), nil
}

func (r *PropertyRepository) Save(_ context.Context, p *property.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties[p.ID] = p
	return nil
}

func (r *PropertyRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.properties, id)
	return nil
}

func (r *PropertyRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.properties[id]
	return ok, nil
}

func (r *PropertyRepository) CodeInternalExists(_ context.Context, codeInternal string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.properties {
		if p.CodeInternal == codeInternal {
			return true, nil
		}
	}
	return false, nil
}

func (r *PropertyRepository) all() []*property.Property {
	out := make([]*property.Property, 0, len(r.properties))
	for _, p := range r.properties {
		out = append(out, p)
	}
	return out
}

package fixtures

import (
	"context"
	"sync"

	"github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/diegorozoc/million/pkg/specification"
	"github.com/google/uuid"
)

// OwnerRepository is an in-memory repository.OwnerRepository.
type OwnerRepository struct {
	mu     sync.RWMutex
	owners map[uuid.UUID]*owner.Owner
}

// NewOwnerRepository builds an empty in-memory owner repository.
func NewOwnerRepository() *OwnerRepository {
	return &OwnerRepository{owners: make(map[uuid.UUID]*owner.Owner)}
}

func (r *OwnerRepository) GetByID(_ context.Context, id uuid.UUID) (*owner.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.owners[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

func (r *OwnerRepository) GetAll(_ context.Context) ([]*owner.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*owner.Owner, 0, len(r.owners))
	for _, o := range r.owners {
		out = append(out, o)
	}
	return out, nil
}

func (r *OwnerRepository) Find(
	_ context.Context, spec specification.Specification[*owner.Owner],
) ([]*owner.Owner, error) {
	r.mu.RLock()
	out := make([]*owner.Owner, 0, len(r.owners))
	for _, o := range r.owners {
		out = append(out, o)
	}
	r.mu.RUnlock()
	return specification.Evaluate(out, spec), nil
}

func (r *OwnerRepository) Save(_ context.Context, o *owner.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[o.ID] = o
	return nil
}

func (r *OwnerRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.owners[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.owners, id)
	return nil
}

func (r *OwnerRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.owners[id]
	return ok, nil
}

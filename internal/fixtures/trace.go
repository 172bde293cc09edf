package fixtures

import (
	"context"
	"sync"

	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/diegorozoc/million/pkg/specification"
	"github.com/google/uuid"
)

// TraceRepository is an in-memory repository.TraceRepository.
type TraceRepository struct {
	mu     sync.RWMutex
	traces map[uuid.UUID]*property.Trace
}

// NewTraceRepository builds an empty in-memory trace repository.
func NewTraceRepository() *TraceRepository {
	return &TraceRepository{traces: make(map[uuid.UUID]*property.Trace)}
}

func (r *TraceRepository) GetByID(_ context.Context, id uuid.UUID) (*property.Trace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tr, ok := r.traces[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return tr, nil
}

func (r *TraceRepository) Find(
	_ context.Context, spec specification.Specification[*property.Trace],
) ([]*property.Trace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return specification.Evaluate(r.all(), spec), nil
}

func (r *TraceRepository) FindOne(
	ctx context.Context, spec specification.Specification[*property.Trace],
) (*property.Trace, error) {
	matches, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, repository.ErrNotFound
	}
	return matches[0], nil
}

func (r *TraceRepository) Save(_ context.Context, tr *property.Trace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.traces[tr.ID] = tr
	return nil
}

func (r *TraceRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.traces[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.traces, id)
	return nil
}

func (r *TraceRepository) DeleteByProperty(_ context.Context, propertyID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, tr := range r.traces {
		if tr.PropertyID == propertyID {
			delete(r.traces, id)
		}
	}
	return nil
}

func (r *TraceRepository) HasTraces(_ context.Context, propertyID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tr := range r.traces {
		if tr.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}

func (r *TraceRepository) CountByProperty(_ context.Context, propertyID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, tr := range r.traces {
		if tr.PropertyID == propertyID {
			count++
		}
	}
	return count, nil
}

func (r *TraceRepository) AverageValueByProperty(_ context.Context, propertyID uuid.UUID) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum float64
	var count int
	for _, tr := range r.traces {
		if tr.PropertyID == propertyID {
			sum += tr.Value.AmountFloat()
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

func (r *TraceRepository) all() []*property.Trace {
	out := make([]*property.Trace, 0, len(r.traces))
	for _, tr := range r.traces {
		out = append(out, tr)
	}
	return out
}

package dispatcher

import (
	"context"
	"sync"

	"github.com/diegorozoc/million/pkg/domain"
)

// HandlerFunc reacts to a single domain event. Handlers must be safe for
// concurrent use: the dispatcher runs all handlers of an event in parallel.
type HandlerFunc func(ctx context.Context, event domain.Event) error

// Resolver maps an event type key to its registered handlers. Resolution uses
// the event's own EventType key, so a handler only ever sees the concrete
// event it subscribed for.
type Resolver interface {
	HandlersFor(eventType string) []HandlerFunc
}

// Registry is an explicit, mutable handler table. Register handlers during
// startup wiring; reads are cheap and safe afterwards.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]HandlerFunc
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string][]HandlerFunc)}
}

// Register appends a handler for the given event type. Registering the same
// handler twice means it runs twice.
func (r *Registry) Register(eventType string, handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

// HandlersFor returns a copy of the handlers registered for eventType, in
// registration order. Never nil handlers, possibly an empty slice.
func (r *Registry) HandlersFor(eventType string) []HandlerFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	registered := r.handlers[eventType]
	out := make([]HandlerFunc, len(registered))
	copy(out, registered)
	return out
}

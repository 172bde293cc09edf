package dispatcher

import (
	"context"
	"log/slog"

	"github.com/diegorozoc/million/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// EventDispatcher is the contract event producers depend on. Dispatcher is
// the production implementation; tests substitute a recording one.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event domain.Event) error
	DispatchMany(ctx context.Context, events []domain.Event) error
}

// Dispatcher fans domain events out to their registered handlers. Handlers of
// one event run concurrently and all of them run to completion even when a
// sibling fails; the first handler error is what the caller sees.
type Dispatcher struct {
	resolver Resolver
	logger   *slog.Logger
}

// New builds a Dispatcher over the given resolver. A nil logger falls back to
// slog.Default.
func New(resolver Resolver, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{resolver: resolver, logger: logger}
}

// Dispatch runs every handler registered for the event's type and waits for
// all of them. An event with no handlers is logged at warn level and is not
// an error.
func (d *Dispatcher) Dispatch(ctx context.Context, event domain.Event) error {
	handlers := d.resolver.HandlersFor(event.EventType())
	if len(handlers) == 0 {
		d.logger.Warn("no handlers registered for domain event",
			"event_type", event.EventType(),
			"event_id", event.EventID())
		return nil
	}

	d.logger.Debug("dispatching domain event",
		"event_type", event.EventType(),
		"event_id", event.EventID(),
		"handlers", len(handlers))

	// A plain Group, not WithContext: a failing handler must not cancel its
	// siblings mid-flight. Wait still surfaces the first error.
	var g errgroup.Group
	for _, handler := range handlers {
		handler := handler
		g.Go(func() error {
			return handler(ctx, event)
		})
	}
	return g.Wait()
}

// DispatchMany dispatches a batch of events concurrently. Handlers of
// different events may interleave freely; only the per-event completion
// guarantee of Dispatch holds. The first error across the batch is returned
// after every handler has finished.
func (d *Dispatcher) DispatchMany(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	var g errgroup.Group
	for _, event := range events {
		event := event
		g.Go(func() error {
			return d.Dispatch(ctx, event)
		})
	}
	return g.Wait()
}

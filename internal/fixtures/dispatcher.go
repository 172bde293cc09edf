package fixtures

import (
	"context"
	"sync"

	"github.com/diegorozoc/million/pkg/domain"
)

// RecordingDispatcher captures dispatched events instead of fanning them out.
// Set Err to make every dispatch fail.
type RecordingDispatcher struct {
	mu     sync.Mutex
	events []domain.Event

	Err error
}

// NewRecordingDispatcher builds an empty RecordingDispatcher.
func NewRecordingDispatcher() *RecordingDispatcher {
	return &RecordingDispatcher{}
}

func (d *RecordingDispatcher) Dispatch(_ context.Context, event domain.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	d.events = append(d.events, event)
	return nil
}

func (d *RecordingDispatcher) DispatchMany(_ context.Context, events []domain.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	d.events = append(d.events, events...)
	return nil
}

// Events returns the captured events in dispatch order.
func (d *RecordingDispatcher) Events() []domain.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Event, len(d.events))
	copy(out, d.events)
	return out
}

// EventsOfType returns the captured events with the given type key.
func (d *RecordingDispatcher) EventsOfType(eventType string) []domain.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []domain.Event
	for _, e := range d.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

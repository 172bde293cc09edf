package domain

// AggregateRoot buffers the domain events raised by an aggregate during one
// use-case execution. The buffer is transient: it is never persisted, and the
// application layer drains it after a successful save.
//
// Not safe for concurrent mutation; an aggregate instance is single-owner for
// the duration of a use case.
type AggregateRoot struct {
	events []Event
}

// RaiseDomainEvent appends an event to the buffer, preserving raise order.
func (a *AggregateRoot) RaiseDomainEvent(e Event) {
	a.events = append(a.events, e)
}

// DomainEvents returns the buffered events in raise order. The returned slice
// is a copy; callers cannot mutate the buffer through it.
func (a *AggregateRoot) DomainEvents() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}

// ClearDomainEvents empties the buffer. Clearing an empty buffer is a no-op.
func (a *AggregateRoot) ClearDomainEvents() {
	a.events = nil
}

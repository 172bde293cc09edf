// Package domain holds the building blocks shared by all aggregates:
// the domain event contract and the aggregate root event buffer.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of a fact already committed inside an aggregate.
// Events are resolved by handlers through their concrete type key (EventType),
// so two event types never share a key.
type Event interface {
	EventID() uuid.UUID
	OccurredOn() time.Time
	EventType() string
}

// BaseEvent carries the identity every domain event shares. Embed it by value
// and construct it with NewBaseEvent at raise time.
type BaseEvent struct {
	ID         uuid.UUID
	OccurredAt time.Time
}

// NewBaseEvent stamps a fresh event identity.
func NewBaseEvent() BaseEvent {
	return BaseEvent{ID: uuid.New(), OccurredAt: time.Now().UTC()}
}

// EventID returns the unique id of this event occurrence.
func (e BaseEvent) EventID() uuid.UUID { return e.ID }

// OccurredOn returns the UTC instant the event was raised.
func (e BaseEvent) OccurredOn() time.Time { return e.OccurredAt }

package domain_test

import (
	"testing"
	"time"

	"github.com/diegorozoc/million/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvent struct {
	domain.BaseEvent
	n int
}

func (stubEvent) EventType() string { return "StubEvent" }

func TestDomainEventBufferPreservesRaiseOrder(t *testing.T) {
	t.Parallel()
	var root domain.AggregateRoot
	for i := 0; i < 3; i++ {
		root.RaiseDomainEvent(stubEvent{BaseEvent: domain.NewBaseEvent(), n: i})
	}

	events := root.DomainEvents()
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, i, e.(stubEvent).n)
	}
}

func TestDomainEventsReturnsACopy(t *testing.T) {
	t.Parallel()
	var root domain.AggregateRoot
	root.RaiseDomainEvent(stubEvent{BaseEvent: domain.NewBaseEvent()})

	view := root.DomainEvents()
	view[0] = stubEvent{BaseEvent: domain.NewBaseEvent(), n: 99}

	assert.Equal(t, 0, root.DomainEvents()[0].(stubEvent).n)
}

func TestClearDomainEventsIsIdempotent(t *testing.T) {
	t.Parallel()
	var root domain.AggregateRoot
	root.RaiseDomainEvent(stubEvent{BaseEvent: domain.NewBaseEvent()})

	root.ClearDomainEvents()
	assert.Empty(t, root.DomainEvents())

	// Clearing an already-empty buffer is a no-op, not an error.
	root.ClearDomainEvents()
	assert.Empty(t, root.DomainEvents())
}

func TestNewBaseEventStampsIdentity(t *testing.T) {
	t.Parallel()
	before := time.Now().UTC()
	e := domain.NewBaseEvent()
	after := time.Now().UTC()

	assert.NotEqual(t, [16]byte{}, [16]byte(e.EventID()))
	assert.False(t, e.OccurredOn().Before(before))
	assert.False(t, e.OccurredOn().After(after))
}

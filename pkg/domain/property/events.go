package property

import (
	"time"

	"github.com/diegorozoc/million/pkg/domain"
	"github.com/diegorozoc/million/pkg/domain/common"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/google/uuid"
)

// Event type keys used for handler registration. Resolution is by the event's
// concrete type: a handler registered under one key is never invoked for another.
const (
	EventTypeCreated      = "PropertyCreated"
	EventTypePriceChanged = "PropertyPriceChanged"
	EventTypeTraceAdded   = "PropertyTraceAdded"
)

// Created is raised exactly once when a property is created.
type Created struct {
	domain.BaseEvent
	PropertyID uuid.UUID
	Name       string
	Address    common.Address
	Price      *money.Money
	OwnerID    uuid.UUID
}

// EventType returns the registration key for Created events.
func (Created) EventType() string { return EventTypeCreated }

// PriceChanged is raised on every successful price change.
type PriceChanged struct {
	domain.BaseEvent
	PropertyID uuid.UUID
	NewPrice   *money.Money
}

// EventType returns the registration key for PriceChanged events.
func (PriceChanged) EventType() string { return EventTypePriceChanged }

// TraceAdded is raised when a sale trace is recorded for a property.
type TraceAdded struct {
	domain.BaseEvent
	PropertyID    uuid.UUID
	TraceID       uuid.UUID
	TraceValue    *money.Money
	SaleDate      time.Time
	TaxPercentage float64
}

// EventType returns the registration key for TraceAdded events.
func (TraceAdded) EventType() string { return EventTypeTraceAdded }

package property

import (
	"time"

	"github.com/diegorozoc/million/pkg/domain"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/google/uuid"
)

// Trace is an immutable sale record for a property. Despite carrying the
// property's id, it is an independent aggregate root: it is created, queried
// and deleted on its own lifecycle and never mutated after creation.
type Trace struct {
	domain.AggregateRoot

	ID            uuid.UUID
	PropertyID    uuid.UUID
	DateSale      time.Time
	Value         *money.Money
	TaxPercentage float64
	TaxAmount     *money.Money
	CreatedAt     time.Time
}

// NewTrace records a sale of the given property at the given value. The tax
// amount is derived as value * taxPercentage / 100 in the value's currency.
// Raises a single TraceAdded event.
func NewTrace(propertyID uuid.UUID, value *money.Money, taxPercentage float64) (*Trace, error) {
	if propertyID == uuid.Nil {
		return nil, ErrPropertyIDEmpty
	}
	if value == nil {
		return nil, ErrNilPrice
	}
	if taxPercentage < 0 || taxPercentage > 100 {
		return nil, ErrTaxPercentageOutOfRange
	}
	taxAmount, err := value.Percent(taxPercentage)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tr := &Trace{
		ID:            uuid.New(),
		PropertyID:    propertyID,
		DateSale:      now,
		Value:         value,
		TaxPercentage: taxPercentage,
		TaxAmount:     taxAmount,
		CreatedAt:     now,
	}
	tr.RaiseDomainEvent(TraceAdded{
		BaseEvent:     domain.NewBaseEvent(),
		PropertyID:    propertyID,
		TraceID:       tr.ID,
		TraceValue:    value,
		SaleDate:      tr.DateSale,
		TaxPercentage: taxPercentage,
	})
	return tr, nil
}

// NetValue returns the sale value minus the tax amount.
func (t *Trace) NetValue() (*money.Money, error) {
	return t.Value.Subtract(t.TaxAmount)
}

// IsRecentSale reports whether the sale happened within the last daysThreshold days.
func (t *Trace) IsRecentSale(daysThreshold int) bool {
	return !t.DateSale.Before(time.Now().UTC().AddDate(0, 0, -daysThreshold))
}

// HasSignificantTax reports whether the tax percentage meets the threshold.
func (t *Trace) HasSignificantTax(threshold float64) bool {
	return t.TaxPercentage >= threshold
}

// HydrateTrace rebuilds a Trace from persisted state, raising no events.
// Repository use only.
func HydrateTrace(
	id, propertyID uuid.UUID,
	dateSale time.Time,
	value *money.Money,
	taxPercentage float64,
	taxAmount *money.Money,
	createdAt time.Time,
) *Trace {
	return &Trace{
		ID:            id,
		PropertyID:    propertyID,
		DateSale:      dateSale,
		Value:         value,
		TaxPercentage: taxPercentage,
		TaxAmount:     taxAmount,
		CreatedAt:     createdAt,
	}
}

// Package trace orchestrates the sale trace use cases: recording sales,
// querying sale history, and serving per-property sale statistics.
package trace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/diegorozoc/million/pkg/dispatcher"
	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/google/uuid"
)

// Service provides the sale trace use cases.
type Service struct {
	traces     repository.TraceRepository
	properties repository.PropertyRepository
	events     dispatcher.EventDispatcher
	logger     *slog.Logger
}

// NewService builds the trace service.
func NewService(
	traces repository.TraceRepository,
	properties repository.PropertyRepository,
	events dispatcher.EventDispatcher,
	logger *slog.Logger,
) *Service {
	return &Service{traces: traces, properties: properties, events: events, logger: logger}
}

// RecordSale records a sale of the property at the given value. The trace's
// buffered event is dispatched after the save.
func (s *Service) RecordSale(
	ctx context.Context, propertyID uuid.UUID, value float64, currencyCode string, taxPercentage float64,
) (*property.Trace, error) {
	exists, err := s.properties.Exists(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("checking property: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("recording sale: %w", property.ErrNotFound)
	}

	saleValue, err := money.New(value, currencyCode)
	if err != nil {
		return nil, err
	}
	tr, err := property.NewTrace(propertyID, saleValue, taxPercentage)
	if err != nil {
		return nil, err
	}
	if err := s.traces.Save(ctx, tr); err != nil {
		return nil, fmt.Errorf("saving sale trace: %w", err)
	}

	events := tr.DomainEvents()
	tr.ClearDomainEvents()
	if err := s.events.DispatchMany(ctx, events); err != nil {
		s.logger.Error("dispatching trace events", "error", err, "trace_id", tr.ID)
		return nil, err
	}
	return tr, nil
}

// GetByID returns a single sale trace.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*property.Trace, error) {
	return s.traces.GetByID(ctx, id)
}

// ListByProperty returns the property's sale history, newest first.
func (s *Service) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*property.Trace, error) {
	return s.traces.Find(ctx, property.NewTracesByPropertySpecification(propertyID))
}

// LatestSale returns the property's most recent sale, or ErrNotFound when the
// property has never sold.
func (s *Service) LatestSale(ctx context.Context, propertyID uuid.UUID) (*property.Trace, error) {
	return s.traces.FindOne(ctx, property.NewLatestTraceByPropertySpecification(propertyID))
}

// ListByValueRange returns traces sold inside [minValue, maxValue], cheapest
// first. Bounds are in the smallest currency unit.
func (s *Service) ListByValueRange(ctx context.Context, minValue, maxValue money.Amount) ([]*property.Trace, error) {
	return s.traces.Find(ctx, property.NewTraceValueRangeSpecification(minValue, maxValue))
}

// ListByDateRange returns traces sold inside [start, end], newest first.
func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time) ([]*property.Trace, error) {
	return s.traces.Find(ctx, property.NewTraceDateRangeSpecification(start, end))
}

// ListRecent returns traces sold within the last given days, newest first.
func (s *Service) ListRecent(ctx context.Context, days int) ([]*property.Trace, error) {
	return s.traces.Find(ctx, property.NewRecentTracesSpecification(days))
}

// ListHighTax returns traces taxed at or above the threshold, highest first.
func (s *Service) ListHighTax(ctx context.Context, taxThreshold float64) ([]*property.Trace, error) {
	return s.traces.Find(ctx, property.NewHighTaxTracesSpecification(taxThreshold))
}

// Statistics summarizes a property's sale history.
type Statistics struct {
	PropertyID   uuid.UUID `json:"property_id"`
	SaleCount    int       `json:"sale_count"`
	AverageValue float64   `json:"average_value"`
	HasSales     bool      `json:"has_sales"`
}

// StatisticsByProperty returns the property's sale statistics. A property
// with no sales yields a zero-valued summary, not an error.
func (s *Service) StatisticsByProperty(ctx context.Context, propertyID uuid.UUID) (Statistics, error) {
	has, err := s.traces.HasTraces(ctx, propertyID)
	if err != nil {
		return Statistics{}, fmt.Errorf("checking sale traces: %w", err)
	}
	stats := Statistics{PropertyID: propertyID, HasSales: has}
	if !has {
		return stats, nil
	}
	if stats.SaleCount, err = s.traces.CountByProperty(ctx, propertyID); err != nil {
		return Statistics{}, fmt.Errorf("counting sale traces: %w", err)
	}
	if stats.AverageValue, err = s.traces.AverageValueByProperty(ctx, propertyID); err != nil {
		return Statistics{}, fmt.Errorf("averaging sale values: %w", err)
	}
	return stats, nil
}

// Delete removes a single sale trace.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.traces.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("deleting sale trace: %w", err)
	}
	return nil
}

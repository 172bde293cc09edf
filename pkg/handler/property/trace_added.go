package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diegorozoc/million/pkg/dispatcher"
	"github.com/diegorozoc/million/pkg/domain"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/repository"
)

// HandleTraceAdded handles PropertyTraceAdded events. It refreshes the
// per-property sale statistics after each recorded sale.
func HandleTraceAdded(
	traces repository.TraceRepository,
	logger *slog.Logger,
) dispatcher.HandlerFunc {
	return func(ctx context.Context, e domain.Event) error {
		log := logger.With(
			"handler", "property.HandleTraceAdded",
			"event_type", e.EventType(),
		)
		log.Info("🟢 [START] Processing PropertyTraceAdded event")

		added, ok := e.(propertydomain.TraceAdded)
		if !ok {
			err := fmt.Errorf("unexpected event type: %s", e.EventType())
			log.Error("unexpected event type", "error", err)
			return err
		}

		log = log.With(
			"property_id", added.PropertyID,
			"trace_id", added.TraceID,
			"event_id", added.ID,
		)

		count, err := traces.CountByProperty(ctx, added.PropertyID)
		if err != nil {
			log.Error("failed to count sale traces", "error", err)
			return fmt.Errorf("counting sale traces: %w", err)
		}
		average, err := traces.AverageValueByProperty(ctx, added.PropertyID)
		if err != nil {
			log.Error("failed to average sale values", "error", err)
			return fmt.Errorf("averaging sale values: %w", err)
		}

		log.Info("✅ sale trace recorded",
			"sale_value", added.TraceValue.String(),
			"sale_count", count,
			"average_value", average,
		)
		return nil
	}
}

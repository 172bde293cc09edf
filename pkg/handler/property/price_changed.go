package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diegorozoc/million/pkg/dispatcher"
	"github.com/diegorozoc/million/pkg/domain"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
)

// HandlePriceChanged handles PropertyPriceChanged events. Price moves feed
// the market history log consumed by the analytics pipeline.
func HandlePriceChanged(logger *slog.Logger) dispatcher.HandlerFunc {
	return func(_ context.Context, e domain.Event) error {
		log := logger.With(
			"handler", "property.HandlePriceChanged",
			"event_type", e.EventType(),
		)
		log.Info("🟢 [START] Processing PropertyPriceChanged event")

		changed, ok := e.(propertydomain.PriceChanged)
		if !ok {
			err := fmt.Errorf("unexpected event type: %s", e.EventType())
			log.Error("unexpected event type", "error", err)
			return err
		}

		log.Info("✅ property price updated",
			"property_id", changed.PropertyID,
			"event_id", changed.ID,
			"new_price", changed.NewPrice.String(),
		)
		return nil
	}
}

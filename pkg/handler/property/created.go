// Package property contains the handlers reacting to property domain events.
// Each constructor closes over its collaborators and returns a
// dispatcher.HandlerFunc ready for registration.
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

// HandleCreated handles PropertyCreated events. It verifies the new listing
// landed in the store and logs the fact for the audit trail.
func HandleCreated(
	properties repository.PropertyRepository,
	logger *slog.Logger,
) dispatcher.HandlerFunc {
	return func(ctx context.Context, e domain.Event) error {
		log := logger.With(
			"handler", "property.HandleCreated",
			"event_type", e.EventType(),
		)
		log.Info("🟢 [START] Processing PropertyCreated event")

		created, ok := e.(propertydomain.Created)
		if !ok {
			err := fmt.Errorf("unexpected event type: %s", e.EventType())
			log.Error("unexpected event type", "error", err)
			return err
		}

		log = log.With(
			"property_id", created.PropertyID,
			"owner_id", created.OwnerID,
			"event_id", created.ID,
		)

		exists, err := properties.Exists(ctx, created.PropertyID)
		if err != nil {
			log.Error("failed to verify property persistence", "error", err)
			return fmt.Errorf("verifying created property: %w", err)
		}
		if !exists {
			log.Warn("created property not yet visible in store")
		}

		log.Info("✅ property listing recorded",
			"name", created.Name,
			"price", created.Price.String(),
		)
		return nil
	}
}

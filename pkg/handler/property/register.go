package property

import (
	"log/slog"

	"github.com/diegorozoc/million/pkg/dispatcher"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/repository"
)

// Register wires every property event handler into the registry under its
// event type key. Call once during startup.
func Register(
	registry *dispatcher.Registry,
	properties repository.PropertyRepository,
	traces repository.TraceRepository,
	logger *slog.Logger,
) {
	registry.Register(propertydomain.EventTypeCreated, HandleCreated(properties, logger))
	registry.Register(propertydomain.EventTypePriceChanged, HandlePriceChanged(logger))
	registry.Register(propertydomain.EventTypeTraceAdded, HandleTraceAdded(traces, logger))
}

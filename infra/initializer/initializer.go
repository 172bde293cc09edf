// Package initializer wires the application together: logger, database,
// repositories, the domain event dispatcher with its handlers, and the
// services the HTTP layer consumes.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/diegorozoc/million/infra"
	imagerepo "github.com/diegorozoc/million/infra/repository/image"
	ownerrepo "github.com/diegorozoc/million/infra/repository/owner"
	propertyrepo "github.com/diegorozoc/million/infra/repository/property"
	tracerepo "github.com/diegorozoc/million/infra/repository/trace"
	"github.com/diegorozoc/million/pkg/config"
	"github.com/diegorozoc/million/pkg/dispatcher"
	propertyhandler "github.com/diegorozoc/million/pkg/handler/property"
	"github.com/diegorozoc/million/pkg/repository"
	authsvc "github.com/diegorozoc/million/pkg/service/auth"
	ownersvc "github.com/diegorozoc/million/pkg/service/owner"
	propertysvc "github.com/diegorozoc/million/pkg/service/property"
	tracesvc "github.com/diegorozoc/million/pkg/service/trace"
	"github.com/diegorozoc/million/webapi"
)

// Deps holds everything InitializeDependencies builds.
type Deps struct {
	Logger     *slog.Logger
	Properties repository.PropertyRepository
	Owners     repository.OwnerRepository
	Images     repository.ImageRepository
	Traces     repository.TraceRepository
	Dispatcher *dispatcher.Dispatcher
	Services   webapi.Services
}

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	deps := &Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if err := infra.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	deps.Properties = propertyrepo.New(db)
	deps.Owners = ownerrepo.New(db)
	deps.Images = imagerepo.New(db)
	deps.Traces = tracerepo.New(db)

	registry := dispatcher.NewRegistry()
	propertyhandler.Register(registry, deps.Properties, deps.Traces, logger)
	deps.Dispatcher = dispatcher.New(registry, logger)

	auth, err := authsvc.New(cfg.Auth.Jwt, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	deps.Services = webapi.Services{
		Property: propertysvc.NewService(deps.Properties, deps.Owners, deps.Images, deps.Traces, deps.Dispatcher, logger),
		Owner:    ownersvc.NewService(deps.Owners, logger),
		Trace:    tracesvc.NewService(deps.Traces, deps.Properties, deps.Dispatcher, logger),
		Auth:     auth,
	}
	return deps, nil
}

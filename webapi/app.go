// Package webapi assembles the Fiber application from the route packages.
package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/diegorozoc/million/pkg/config"
	"github.com/diegorozoc/million/pkg/service/auth"
	ownersvc "github.com/diegorozoc/million/pkg/service/owner"
	propertysvc "github.com/diegorozoc/million/pkg/service/property"
	tracesvc "github.com/diegorozoc/million/pkg/service/trace"
	"github.com/diegorozoc/million/webapi/common"
	ownerapi "github.com/diegorozoc/million/webapi/owner"
	propertyapi "github.com/diegorozoc/million/webapi/property"
	traceapi "github.com/diegorozoc/million/webapi/trace"
)

// Services groups everything the HTTP layer depends on.
type Services struct {
	Property *propertysvc.Service
	Owner    *ownersvc.Service
	Trace    *tracesvc.Service
	Auth     *auth.Service
}

// NewApp builds the Fiber app with rate limiting, panic recovery, and all
// routes registered.
func NewApp(svcs Services, cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	AuthRoutes(app, svcs.Auth)
	propertyapi.Routes(app, svcs.Property, cfg.Auth.Jwt)
	ownerapi.Routes(app, svcs.Owner, cfg.Auth.Jwt)
	traceapi.Routes(app, svcs.Trace, cfg.Auth.Jwt)

	return app
}

// Package middleware holds the Fiber middleware guarding protected routes.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/diegorozoc/million/pkg/config"
	"github.com/diegorozoc/million/pkg/service/auth"
)

// JwtProtected rejects requests without a valid bearer token. The verified
// token lands in c.Locals("user") for downstream handlers.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Set(fiber.HeaderContentType, "application/problem+json")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"title":  "Unauthorized",
				"status": fiber.StatusUnauthorized,
				"detail": err.Error(),
			})
		},
	})
}

// RequireRole allows only the listed roles past. Must run after JwtProtected.
func RequireRole(roles ...auth.Role) fiber.Handler {
	allowed := make(map[auth.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return fiber.ErrUnauthorized
		}
		role, err := auth.RoleFromToken(token)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		if _, ok := allowed[role]; !ok {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}

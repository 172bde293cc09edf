package webapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/diegorozoc/million/pkg/service/auth"
	"github.com/diegorozoc/million/webapi/common"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthRoutes registers the login endpoint.
func AuthRoutes(app *fiber.App, authSvc *auth.Service) {
	app.Post("/login", Login(authSvc))
}

// Login authenticates a demo user and returns a JWT token.
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /login [post]
func Login(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Invalid email or password", nil)
			}
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		}
		token, err := authSvc.GenerateToken(c.Context(), u)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", fiber.Map{
			"token": token,
			"role":  u.Role,
		})
	}
}

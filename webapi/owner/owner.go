// Package owner exposes the owner endpoints.
//
// Routes:
//   - POST   /owner      : Register a new owner (admin, manager).
//   - GET    /owner      : List all owners.
//   - GET    /owner/:id  : Retrieve an owner.
//   - PUT    /owner/:id  : Update an owner's profile (admin, manager).
//   - DELETE /owner/:id  : Delete an owner without properties (admin).
package owner

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/diegorozoc/million/pkg/config"
	ownerdomain "github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/middleware"
	"github.com/diegorozoc/million/pkg/service/auth"
	ownersvc "github.com/diegorozoc/million/pkg/service/owner"
	"github.com/diegorozoc/million/webapi/common"
)

type CreateOwnerRequest struct {
	Name       string `json:"name" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	PhotoURL   string `json:"photo_url" validate:"omitempty,url"`
}

type UpdateOwnerRequest struct {
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// OwnerDTO is the API representation of an owner.
type OwnerDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	BirthDate     string   `json:"birth_date"`
	Age           int      `json:"age"`
	PhotoURL      string   `json:"photo_url,omitempty"`
	PropertyIDs   []string `json:"property_ids,omitempty"`
	PropertyCount int      `json:"property_count"`
}

func toDTO(o *ownerdomain.Owner) OwnerDTO {
	dto := OwnerDTO{
		ID:            o.ID.String(),
		Name:          o.Name,
		Address:       o.Address.FullAddress(),
		BirthDate:     o.DateOfBirth.Value().Format("2006-01-02"),
		Age:           o.Age(),
		PhotoURL:      o.PhotoURL,
		PropertyCount: o.PropertyCount(),
	}
	for _, id := range o.PropertyIDs() {
		dto.PropertyIDs = append(dto.PropertyIDs, id.String())
	}
	return dto
}

// Routes registers the owner endpoints.
func Routes(app *fiber.App, svc *ownersvc.Service, cfg *config.Jwt) {
	protected := middleware.JwtProtected(cfg)
	managers := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	admins := middleware.RequireRole(auth.RoleAdmin)

	app.Post("/owner", protected, managers, Create(svc))
	app.Get("/owner", protected, List(svc))
	app.Get("/owner/:id", protected, Get(svc))
	app.Put("/owner/:id", protected, managers, Update(svc))
	app.Delete("/owner/:id", protected, admins, Delete(svc))
}

// Create registers a new owner.
// @Summary Create an owner
// @Tags owners
// @Accept json
// @Produce json
// @Param request body CreateOwnerRequest true "Owner data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /owner [post]
// @Security Bearer
func Create(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateOwnerRequest](c)
		if input == nil {
			return err
		}
		birthDate, err := time.Parse("2006-01-02", input.BirthDate)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid birth date", err.Error())
		}
		o, err := svc.Create(c.Context(), ownersvc.CreateInput{
			Name:       input.Name,
			Street:     input.Street,
			City:       input.City,
			PostalCode: input.PostalCode,
			Country:    input.Country,
			BirthDate:  birthDate,
			PhotoURL:   input.PhotoURL,
		})
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create owner", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Owner created", toDTO(o))
	}
}

// List returns the owners matching the optional query filters. Without
// filters every registered owner is returned.
// @Summary List owners
// @Tags owners
// @Produce json
// @Param name query string false "Name substring, case-insensitive"
// @Param adults_only query bool false "Only owners of legal age"
// @Param min_age query int false "Minimum age in years"
// @Param max_age query int false "Maximum age in years"
// @Success 200 {object} common.Response
// @Router /owner [get]
// @Security Bearer
func List(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := ownerdomain.Filter{
			Name:       c.Query("name"),
			AdultsOnly: c.QueryBool("adults_only"),
		}
		if v := c.QueryInt("min_age", -1); v >= 0 {
			filter.MinAge = &v
		}
		if v := c.QueryInt("max_age", -1); v >= 0 {
			filter.MaxAge = &v
		}
		owners, err := svc.Search(c.Context(), filter)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list owners", err)
		}
		dtos := make([]OwnerDTO, 0, len(owners))
		for _, o := range owners {
			dtos = append(dtos, toDTO(o))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Owners found", dtos)
	}
}

// Get retrieves an owner by id.
// @Summary Get owner by ID
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /owner/{id} [get]
// @Security Bearer
func Get(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid owner ID", err.Error())
		}
		o, err := svc.GetByID(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Owner not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Owner found", toDTO(o))
	}
}

// Update applies profile changes.
// @Summary Update an owner
// @Tags owners
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param request body UpdateOwnerRequest true "Updates"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /owner/{id} [put]
// @Security Bearer
func Update(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid owner ID", err.Error())
		}
		input, err := common.BindAndValidate[UpdateOwnerRequest](c)
		if input == nil {
			return err
		}
		o, err := svc.Update(c.Context(), id, ownersvc.UpdateInput{
			Name:     input.Name,
			PhotoURL: input.PhotoURL,
		})
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't update owner", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Owner updated", toDTO(o))
	}
}

// Delete removes an owner who holds no properties.
// @Summary Delete an owner
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /owner/{id} [delete]
// @Security Bearer
func Delete(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid owner ID", err.Error())
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete owner", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Owner deleted", nil)
	}
}

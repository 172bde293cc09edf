// Package property exposes the property listing endpoints.
//
// Routes:
//   - POST   /property                 : List a new property (admin, manager).
//   - GET    /property                 : Search properties by filters.
//   - GET    /property/:id             : Retrieve a property.
//   - GET    /property/code/:code      : Retrieve a property by internal code.
//   - PATCH  /property/:id/price       : Change the asking price (admin, manager).
//   - PUT    /property/:id             : Update name or year (admin, manager).
//   - POST   /property/:id/owner       : Transfer to another owner (admin).
//   - POST   /property/:id/images      : Attach a photo (admin, manager).
//   - DELETE /property/:id             : Delete a property (admin).
package property

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/diegorozoc/million/pkg/config"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/middleware"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/service/auth"
	propertysvc "github.com/diegorozoc/million/pkg/service/property"
	"github.com/diegorozoc/million/webapi/common"
)

// Routes registers the property endpoints.
func Routes(app *fiber.App, svc *propertysvc.Service, cfg *config.Jwt) {
	protected := middleware.JwtProtected(cfg)
	managers := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	admins := middleware.RequireRole(auth.RoleAdmin)

	app.Post("/property", protected, managers, Create(svc))
	app.Get("/property", protected, List(svc))
	app.Get("/property/code/:code", protected, GetByCode(svc))
	app.Get("/property/:id", protected, Get(svc))
	app.Patch("/property/:id/price", protected, managers, ChangePrice(svc))
	app.Put("/property/:id", protected, managers, Update(svc))
	app.Post("/property/:id/owner", protected, admins, AssignOwner(svc))
	app.Post("/property/:id/images", protected, managers, AddImage(svc))
	app.Get("/property/:id/images", protected, ListImages(svc))
	app.Delete("/property/:id", protected, admins, Delete(svc))
}

// Create lists a new property.
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param request body CreatePropertyRequest true "Property data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /property [post]
// @Security Bearer
func Create(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreatePropertyRequest](c)
		if input == nil {
			return err
		}
		ownerID, err := uuid.Parse(input.OwnerID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid owner ID", err.Error())
		}
		currency := input.Currency
		if currency == "" {
			currency = money.DefaultCurrency.Code.String()
		}
		p, err := svc.Create(c.Context(), propertysvc.CreateInput{
			Name:         input.Name,
			Street:       input.Street,
			City:         input.City,
			PostalCode:   input.PostalCode,
			Country:      input.Country,
			Price:        input.Price,
			CurrencyCode: currency,
			CodeInternal: input.CodeInternal,
			Year:         input.Year,
			OwnerID:      ownerID,
		})
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create property", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Property created", toDTO(p))
	}
}

// List searches properties by the optional query filters country, city,
// min_price, max_price and year.
// @Summary Search properties
// @Tags properties
// @Produce json
// @Param country query string false "Country filter"
// @Param city query string false "City filter"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param year query int false "Construction year"
// @Success 200 {object} common.Response
// @Router /property [get]
// @Security Bearer
func List(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := propertydomain.Filter{
			Country: c.Query("country"),
			City:    c.Query("city"),
		}
		if raw := c.Query("min_price"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid min_price", err.Error())
			}
			bound, err := money.New(v, money.DefaultCurrency)
			if err != nil {
				return common.DomainErrorJSON(c, "Invalid min_price", err)
			}
			amount := bound.Amount()
			filter.MinPrice = &amount
		}
		if raw := c.Query("max_price"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid max_price", err.Error())
			}
			bound, err := money.New(v, money.DefaultCurrency)
			if err != nil {
				return common.DomainErrorJSON(c, "Invalid max_price", err)
			}
			amount := bound.Amount()
			filter.MaxPrice = &amount
		}
		if raw := c.Query("year"); raw != "" {
			year, err := strconv.Atoi(raw)
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid year", err.Error())
			}
			filter.Year = &year
		}

		properties, err := svc.List(c.Context(), filter)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list properties", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Properties found", toDTOs(properties))
	}
}

// Get retrieves a property by id.
// @Summary Get property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /property/{id} [get]
// @Security Bearer
func Get(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		p, err := svc.GetByID(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Property not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Property found", toDTO(p))
	}
}

// GetByCode retrieves a property by its internal code.
// @Summary Get property by internal code
// @Tags properties
// @Produce json
// @Param code path string true "Internal code"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /property/code/{code} [get]
// @Security Bearer
func GetByCode(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetByCodeInternal(c.Context(), c.Params("code"))
		if err != nil {
			return common.DomainErrorJSON(c, "Property not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Property found", toDTO(p))
	}
}

// ChangePrice sets a new asking price.
// @Summary Change property price
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body ChangePriceRequest true "New price"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /property/{id}/price [patch]
// @Security Bearer
func ChangePrice(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		input, err := common.BindAndValidate[ChangePriceRequest](c)
		if input == nil {
			return err
		}
		currency := input.Currency
		if currency == "" {
			currency = money.DefaultCurrency.Code.String()
		}
		p, err := svc.ChangePrice(c.Context(), id, input.Price, currency)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't change price", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Price changed", toDTO(p))
	}
}

// Update applies detail changes.
// @Summary Update property details
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body UpdatePropertyRequest true "Updates"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /property/{id} [put]
// @Security Bearer
func Update(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		input, err := common.BindAndValidate[UpdatePropertyRequest](c)
		if input == nil {
			return err
		}
		update := propertysvc.UpdateInput{
			Name: input.Name,
			Year: input.Year,
		}
		if input.Address != nil {
			update.Address = &propertysvc.AddressInput{
				Street:     input.Address.Street,
				City:       input.Address.City,
				PostalCode: input.Address.PostalCode,
				Country:    input.Address.Country,
			}
		}
		p, err := svc.Update(c.Context(), id, update)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't update property", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Property updated", toDTO(p))
	}
}

// AssignOwner transfers the property to another owner.
// @Summary Assign property to an owner
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body AssignOwnerRequest true "New owner"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /property/{id}/owner [post]
// @Security Bearer
func AssignOwner(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		input, err := common.BindAndValidate[AssignOwnerRequest](c)
		if input == nil {
			return err
		}
		ownerID, err := uuid.Parse(input.OwnerID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid owner ID", err.Error())
		}
		if err := svc.AssignToOwner(c.Context(), id, ownerID); err != nil {
			return common.DomainErrorJSON(c, "Couldn't assign owner", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Owner assigned", nil)
	}
}

// AddImage attaches a photo to the property.
// @Summary Add a property image
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body AddImageRequest true "Image data"
// @Success 201 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /property/{id}/images [post]
// @Security Bearer
func AddImage(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		input, err := common.BindAndValidate[AddImageRequest](c)
		if input == nil {
			return err
		}
		img, err := svc.AddImage(c.Context(), id, input.FileName, input.Enabled)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't add image", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Image added", ImageDTO{
			ID:       img.ID.String(),
			FileName: img.FileName,
			Enabled:  img.Enabled,
		})
	}
}

// ListImages returns the property's gallery.
// @Summary List property images
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param enabled_only query bool false "Only enabled images"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /property/{id}/images [get]
// @Security Bearer
func ListImages(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		images, err := svc.ListImages(c.Context(), id, c.QueryBool("enabled_only"))
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list images", err)
		}
		dtos := make([]ImageDTO, 0, len(images))
		for _, img := range images {
			dtos = append(dtos, ImageDTO{
				ID:       img.ID.String(),
				FileName: img.FileName,
				Enabled:  img.Enabled,
			})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Images found", dtos)
	}
}

// Delete removes a property.
// @Summary Delete a property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /property/{id} [delete]
// @Security Bearer
func Delete(svc *propertysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete property", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Property deleted", nil)
	}
}

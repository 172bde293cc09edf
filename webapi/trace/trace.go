// Package trace exposes the sale trace endpoints.
//
// Routes:
//   - POST   /property/:id/traces        : Record a sale (admin, manager).
//   - GET    /property/:id/traces        : Sale history, newest first.
//   - GET    /property/:id/traces/latest : Most recent sale.
//   - GET    /property/:id/traces/stats  : Sale statistics.
//   - GET    /traces/recent              : Sales within the last N days.
//   - GET    /traces/high-tax            : Sales taxed at or above a threshold.
//   - DELETE /traces/:id                 : Delete a sale trace (admin).
package trace

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/diegorozoc/million/pkg/config"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/middleware"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/service/auth"
	tracesvc "github.com/diegorozoc/million/pkg/service/trace"
	"github.com/diegorozoc/million/webapi/common"
)

type RecordSaleRequest struct {
	Value         float64 `json:"value" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3,uppercase"`
	TaxPercentage float64 `json:"tax_percentage" validate:"gte=0,lte=100"`
}

// TraceDTO is the API representation of a sale trace.
type TraceDTO struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property_id"`
	DateSale      time.Time `json:"date_sale"`
	Value         float64   `json:"value"`
	Currency      string    `json:"currency"`
	TaxPercentage float64   `json:"tax_percentage"`
	TaxAmount     float64   `json:"tax_amount"`
}

func toDTO(tr *propertydomain.Trace) TraceDTO {
	return TraceDTO{
		ID:            tr.ID.String(),
		PropertyID:    tr.PropertyID.String(),
		DateSale:      tr.DateSale,
		Value:         tr.Value.AmountFloat(),
		Currency:      tr.Value.CurrencyCode().String(),
		TaxPercentage: tr.TaxPercentage,
		TaxAmount:     tr.TaxAmount.AmountFloat(),
	}
}

func toDTOs(traces []*propertydomain.Trace) []TraceDTO {
	out := make([]TraceDTO, 0, len(traces))
	for _, tr := range traces {
		out = append(out, toDTO(tr))
	}
	return out
}

// Routes registers the sale trace endpoints.
func Routes(app *fiber.App, svc *tracesvc.Service, cfg *config.Jwt) {
	protected := middleware.JwtProtected(cfg)
	managers := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	admins := middleware.RequireRole(auth.RoleAdmin)

	app.Post("/property/:id/traces", protected, managers, RecordSale(svc))
	app.Get("/property/:id/traces", protected, ListByProperty(svc))
	app.Get("/property/:id/traces/latest", protected, Latest(svc))
	app.Get("/property/:id/traces/stats", protected, Statistics(svc))
	app.Get("/traces/recent", protected, Recent(svc))
	app.Get("/traces/high-tax", protected, HighTax(svc))
	app.Delete("/traces/:id", protected, admins, Delete(svc))
}

// RecordSale records a property sale.
// @Summary Record a sale
// @Tags traces
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body RecordSaleRequest true "Sale data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /property/{id}/traces [post]
// @Security Bearer
func RecordSale(svc *tracesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		input, err := common.BindAndValidate[RecordSaleRequest](c)
		if input == nil {
			return err
		}
		currency := input.Currency
		if currency == "" {
			currency = money.DefaultCurrency.Code.String()
		}
		tr, err := svc.RecordSale(c.Context(), id, input.Value, currency, input.TaxPercentage)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't record sale", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Sale recorded", toDTO(tr))
	}
}

// ListByProperty returns the property's sale history.
// @Summary Sale history
// @Tags traces
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} common.Response
// @Router /property/{id}/traces [get]
// @Security Bearer
func ListByProperty(svc *tracesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		traces, err := svc.ListByProperty(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list sales", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Sales found", toDTOs(traces))
	}
}

// Latest returns the property's most recent sale.
// @Summary Latest sale
// @Tags traces
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /property/{id}/traces/latest [get]
// @Security Bearer
func Latest(svc *tracesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		tr, err := svc.LatestSale(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "No sales recorded", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Latest sale", toDTO(tr))
	}
}

// Statistics returns the property's sale statistics.
// @Summary Sale statistics
// @Tags traces
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} common.Response
// @Router /property/{id}/traces/stats [get]
// @Security Bearer
func Statistics(svc *tracesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid property ID", err.Error())
		}
		stats, err := svc.StatisticsByProperty(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't compute statistics", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Sale statistics", stats)
	}
}

// Recent returns sales within the last N days (query param days, default 30).
// @Summary Recent sales
// @Tags traces
// @Produce json
// @Param days query int false "Window in days" default(30)
// @Success 200 {object} common.Response
// @Router /traces/recent [get]
// @Security Bearer
func Recent(svc *tracesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := 30
		if raw := c.Query("days"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid days", "days must be a positive integer")
			}
			days = v
		}
		traces, err := svc.ListRecent(c.Context(), days)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list sales", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Recent sales", toDTOs(traces))
	}
}

// HighTax returns sales taxed at or above the threshold (query param
// threshold, default 10).
// @Summary High tax sales
// @Tags traces
// @Produce json
// @Param threshold query number false "Tax percentage threshold" default(10)
// @Success 200 {object} common.Response
// @Router /traces/high-tax [get]
// @Security Bearer
func HighTax(svc *tracesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threshold := 10.0
		if raw := c.Query("threshold"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < 0 || v > 100 {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid threshold", "threshold must be between 0 and 100")
			}
			threshold = v
		}
		traces, err := svc.ListHighTax(c.Context(), threshold)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list sales", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "High tax sales", toDTOs(traces))
	}
}

// Delete removes a sale trace.
// @Summary Delete a sale trace
// @Tags traces
// @Produce json
// @Param id path string true "Trace ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /traces/{id} [delete]
// @Security Bearer
func Delete(svc *tracesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid trace ID", err.Error())
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete sale trace", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Sale trace deleted", nil)
	}
}

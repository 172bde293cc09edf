// Package common holds the response envelope and request plumbing shared by
// every route package.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	commondomain "github.com/diegorozoc/million/pkg/domain/common"
	ownerdomain "github.com/diegorozoc/million/pkg/domain/owner"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/diegorozoc/million/pkg/service/auth"
	ownersvc "github.com/diegorozoc/million/pkg/service/owner"
	propertysvc "github.com/diegorozoc/million/pkg/service/property"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ErrorResponseJSON writes an RFC 9457 problem response.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// DomainErrorJSON maps a domain error to a problem response.
func DomainErrorJSON(c *fiber.Ctx, title string, err error) error {
	return ErrorResponseJSON(c, ErrorToStatusCode(err), title, err.Error())
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, propertydomain.ErrNotFound),
		errors.Is(err, ownerdomain.ErrNotFound),
		errors.Is(err, propertydomain.ErrImageNotFound),
		errors.Is(err, propertydomain.ErrTraceNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, propertysvc.ErrRejected),
		errors.Is(err, propertydomain.ErrOwnershipRuleViolated),
		errors.Is(err, ownersvc.ErrHasProperties):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, money.ErrInvalidCurrency),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidPercentage),
		errors.Is(err, propertydomain.ErrNameEmpty),
		errors.Is(err, propertydomain.ErrCodeInternalEmpty),
		errors.Is(err, propertydomain.ErrYearOutOfRange),
		errors.Is(err, propertydomain.ErrFileNameEmpty),
		errors.Is(err, propertydomain.ErrTaxPercentageOutOfRange),
		errors.Is(err, ownerdomain.ErrNameEmpty),
		errors.Is(err, commondomain.ErrStreetEmpty),
		errors.Is(err, commondomain.ErrCityEmpty),
		errors.Is(err, commondomain.ErrPostalCodeEmpty),
		errors.Is(err, commondomain.ErrCountryEmpty),
		errors.Is(err, commondomain.ErrBirthDateInFuture),
		errors.Is(err, commondomain.ErrBirthDateTooOld):
		return fiber.StatusBadRequest
	case errors.Is(err, auth.ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure the error response is already written
// and the returned pointer is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		_ = ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
		return nil, err
	}
	return &input, nil
}

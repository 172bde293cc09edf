package property

import (
	"time"

	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
)

type CreatePropertyRequest struct {
	Name         string  `json:"name" validate:"required"`
	Street       string  `json:"street" validate:"required"`
	City         string  `json:"city" validate:"required"`
	PostalCode   string  `json:"postal_code" validate:"required"`
	Country      string  `json:"country" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Currency     string  `json:"currency" validate:"omitempty,len=3,uppercase"`
	CodeInternal string  `json:"code_internal" validate:"required"`
	Year         int     `json:"year" validate:"required"`
	OwnerID      string  `json:"owner_id" validate:"required,uuid"`
}

type ChangePriceRequest struct {
	Price    float64 `json:"price" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3,uppercase"`
}

type UpdatePropertyRequest struct {
	Name    *string               `json:"name,omitempty"`
	Year    *int                  `json:"year,omitempty"`
	Address *UpdateAddressRequest `json:"address,omitempty"`
}

type UpdateAddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type AssignOwnerRequest struct {
	OwnerID string `json:"owner_id" validate:"required,uuid"`
}

type AddImageRequest struct {
	FileName string `json:"file_name" validate:"required"`
	Enabled  bool   `json:"enabled"`
}

// PropertyDTO is the API representation of a property listing.
type PropertyDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	CodeInternal string     `json:"code_internal"`
	Year         int        `json:"year"`
	OwnerID      string     `json:"owner_id"`
	Images       []ImageDTO `json:"images,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ImageDTO struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Enabled  bool   `json:"enabled"`
}

func toDTO(p *propertydomain.Property) PropertyDTO {
	dto := PropertyDTO{
		ID:           p.ID.String(),
		Name:         p.Name,
		Address:      p.Address.FullAddress(),
		Price:        p.Price.AmountFloat(),
		Currency:     p.Price.CurrencyCode().String(),
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		OwnerID:      p.OwnerID.String(),
		CreatedAt:    p.CreatedAt,
	}
	for _, img := range p.Images() {
		dto.Images = append(dto.Images, ImageDTO{
			ID:       img.ID.String(),
			FileName: img.FileName,
			Enabled:  img.Enabled,
		})
	}
	return dto
}

func toDTOs(properties []*propertydomain.Property) []PropertyDTO {
	out := make([]PropertyDTO, 0, len(properties))
	for _, p := range properties {
		out = append(out, toDTO(p))
	}
	return out
}

package dto

import (
	"strings"

	"adscape/internal/domains/billboard/model"
	"adscape/shared"
	gDto "adscape/shared/dto"
	gModel "adscape/shared/model"
	"adscape/shared/timezone"

	"github.com/google/uuid"
)

// CreateBillboardRequest registers a screen. Price is the legacy name of PricePerDay.
type CreateBillboardRequest struct {
	Location     string   `json:"location"      validate:"required,max=255"`
	PricePerDay  *float64 `json:"price_per_day" validate:"omitempty,min=0"`
	Price        *float64 `json:"price"         validate:"omitempty,min=0"`
	Resolution   string   `json:"resolution"    validate:"omitempty,max=50"`
	ContactPhone string   `json:"contact_phone" validate:"omitempty,phone"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email,max=255"`
}

func (c *CreateBillboardRequest) Normalize() {
	c.Location = strings.TrimSpace(c.Location)
	c.ContactPhone = strings.TrimSpace(c.ContactPhone)
	c.ContactEmail = strings.TrimSpace(c.ContactEmail)

	if c.PricePerDay == nil {
		c.PricePerDay = c.Price
	}
}

func (c *CreateBillboardRequest) ToModel(user string) model.Billboard {
	c.Normalize()

	return model.Billboard{
		ID:           uuid.NewString(),
		Location:     c.Location,
		PricePerDay:  c.PricePerDay,
		Resolution:   c.Resolution,
		Availability: true,
		ContactPhone: optional(c.ContactPhone),
		ContactEmail: optional(c.ContactEmail),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBillboardRequest never touches availability.
type UpdateBillboardRequest struct {
	Location     string   `db:"location"      json:"location"      validate:"omitempty,max=255"`
	PricePerDay  *float64 `db:"price_per_day" json:"price_per_day" validate:"omitempty,min=0"`
	Price        *float64 `json:"price"         validate:"omitempty,min=0"`
	Resolution   string   `db:"resolution"    json:"resolution"    validate:"omitempty,max=50"`
	ContactPhone *string  `db:"contact_phone" json:"contact_phone" validate:"omitempty,phone"`
	ContactEmail *string  `db:"contact_email" json:"contact_email" validate:"omitempty,email,max=255"`
}

func (u *UpdateBillboardRequest) Normalize() {
	u.Location = strings.TrimSpace(u.Location)

	if u.PricePerDay == nil {
		u.PricePerDay = u.Price
	}

	u.Price = nil
}

type BillboardResponse struct {
	ID           string   `json:"billboard_id"`
	Location     string   `json:"location"`
	PricePerDay  *float64 `json:"price_per_day"`
	Resolution   string   `json:"resolution"`
	Availability bool     `json:"availability"`
	ContactPhone *string  `json:"contact_phone"`
	ContactEmail *string  `json:"contact_email"`
	gDto.Metadata
}

func (r *BillboardResponse) FromModel(model model.Billboard) {
	r.ID = model.ID
	r.Location = model.Location
	r.PricePerDay = model.PricePerDay
	r.Resolution = model.Resolution
	r.Availability = model.Availability
	r.ContactPhone = model.ContactPhone
	r.ContactEmail = model.ContactEmail
	r.Metadata.FromModel(model.Metadata)
}

type GetBillboardsResponse struct {
	Billboards []BillboardResponse `json:"billboards"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetBillboardsResponse) FromModels(models []model.Billboard, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Billboards = make([]BillboardResponse, len(models))
	for i, mod := range models {
		r.Billboards[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	ID           string `json:"billboard_id"`
	Availability bool   `json:"availability"`
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

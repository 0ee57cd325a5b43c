package dto

import (
	"strings"

	"adscape/internal/domains/advertiser/model"
	"adscape/shared"
	gDto "adscape/shared/dto"
	gModel "adscape/shared/model"
	"adscape/shared/timezone"

	"github.com/google/uuid"
)

type CreateAdvertiserRequest struct {
	CompanyName  string `json:"company_name"  validate:"required,max=255"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email,max=255"`
}

func (c *CreateAdvertiserRequest) ToModel(user string) model.Advertiser {
	var email *string
	if trimmed := strings.TrimSpace(c.ContactEmail); trimmed != "" {
		email = &trimmed
	}

	return model.Advertiser{
		ID:           uuid.NewString(),
		CompanyName:  strings.TrimSpace(c.CompanyName),
		ContactEmail: email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AdvertiserResponse struct {
	ID           string  `json:"id"`
	CompanyName  string  `json:"company_name"`
	ContactEmail *string `json:"contact_email"`
	gDto.Metadata
}

func (r *AdvertiserResponse) FromModel(model model.Advertiser) {
	r.ID = model.ID
	r.CompanyName = model.CompanyName
	r.ContactEmail = model.ContactEmail
	r.Metadata.FromModel(model.Metadata)
}

type GetAdvertisersResponse struct {
	Advertisers []AdvertiserResponse `json:"advertisers"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAdvertisersResponse) FromModels(models []model.Advertiser, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Advertisers = make([]AdvertiserResponse, len(models))
	for i, mod := range models {
		r.Advertisers[i].FromModel(mod)
	}
}

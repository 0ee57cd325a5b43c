package dto

import (
	"mime/multipart"
	"strings"
	"time"

	"adscape/internal/domains/booking/model"
	"adscape/shared"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"
	gModel "adscape/shared/model"
	"adscape/shared/timezone"

	"github.com/google/uuid"
)

const FieldAssetRef = "asset_ref"

// CreateBookingRequest carries either an uploaded creative (AdImage) or a reference to one that
// already exists (AssetRef). Neither is required.
type CreateBookingRequest struct {
	AdvertiserID string                `json:"advertiser_id" validate:"required"`
	BillboardID  string                `json:"billboard_id"  validate:"required"`
	StartDate    string                `json:"start_date"    validate:"required,isodate"`
	EndDate      string                `json:"end_date"      validate:"required,isodate"`
	AssetRef     string                `json:"asset_ref"     validate:"omitempty,max=2048"`
	AdImage      *multipart.FileHeader `json:"ad_image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/gif image/webp video/mp4,maxfilesize=20"`
	AdImageFile  multipart.File        `json:"-"`
}

// DateRange parses both dates and rejects an inverted range.
func (c *CreateBookingRequest) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, strings.TrimSpace(c.StartDate))
	if err != nil {
		return start, end, failure.BadRequestFromString("start_date must be a date in YYYY-MM-DD format")
	}

	end, err = time.Parse(constant.DateOnlyFormat, strings.TrimSpace(c.EndDate))
	if err != nil {
		return start, end, failure.BadRequestFromString("end_date must be a date in YYYY-MM-DD format")
	}

	if err = model.ValidateRange(start, end); err != nil {
		return start, end, err
	}

	return start, end, nil
}

func (c *CreateBookingRequest) HasUpload() bool {
	return c.AdImage != nil && c.AdImageFile != nil
}

// AssetReference returns the caller supplied reference, nil when blank.
func (c *CreateBookingRequest) AssetReference() *string {
	ref := strings.TrimSpace(c.AssetRef)
	if ref == constant.Empty {
		return nil
	}

	return &ref
}

func (c *CreateBookingRequest) ToModel(user, status string, start, end time.Time) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		AdvertiserID: strings.TrimSpace(c.AdvertiserID),
		BillboardID:  strings.TrimSpace(c.BillboardID),
		StartDate:    start,
		EndDate:      end,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateBookingResponse struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	AssetRef *string `json:"asset_ref"`
}

type BookingResponse struct {
	ID           string  `json:"id"`
	AdvertiserID string  `json:"advertiser_id"`
	BillboardID  string  `json:"billboard_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       string  `json:"status"`
	CancelledAt  *string `json:"cancelled_at"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.AdvertiserID = model.AdvertiserID
	r.BillboardID = model.BillboardID
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Status = model.Status

	if model.CancelledAt != nil {
		cancelledAt := timezone.Format(*model.CancelledAt, constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

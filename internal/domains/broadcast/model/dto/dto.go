package dto

import (
	"strings"

	bookingModel "adscape/internal/domains/booking/model"
	"adscape/shared"
	"adscape/shared/constant"
	"adscape/shared/timezone"
)

// Broadcast is one creative the playback client should be showing.
type Broadcast struct {
	BookingID         string  `json:"booking_id"`
	BillboardID       string  `json:"billboard_id"`
	BillboardLocation string  `json:"billboard_location"`
	AdvertiserName    *string `json:"advertiser_name"`
	FileRef           *string `json:"file_ref"`
	Status            string  `json:"status"`
}

// LiveBroadcastsResponse is always a complete snapshot. Degraded marks an empty list caused by a storage error.
type LiveBroadcastsResponse struct {
	Broadcasts []Broadcast `json:"broadcasts"`
	Degraded   bool        `json:"degraded"`
	Error      string      `json:"error,omitempty"`
}

func (r *LiveBroadcastsResponse) FromModels(details []bookingModel.Detail, assetBaseURL string) {
	r.Broadcasts = make([]Broadcast, len(details))

	for i, detail := range details {
		r.Broadcasts[i] = Broadcast{
			BookingID:         detail.BookingID,
			BillboardID:       detail.BillboardID,
			BillboardLocation: detail.BillboardLocation,
			AdvertiserName:    detail.AdvertiserName,
			FileRef:           ResolveFileRef(detail.FileURL, assetBaseURL),
			Status:            detail.Status,
		}
	}
}

func DegradedBroadcasts(err error) LiveBroadcastsResponse {
	return LiveBroadcastsResponse{
		Broadcasts: []Broadcast{},
		Degraded:   true,
		Error:      err.Error(),
	}
}

// ResolveFileRef prefixes server-relative references ("/uploads/1.png") with baseURL.
// Absolute URLs and an empty baseURL leave the reference as stored.
func ResolveFileRef(ref *string, baseURL string) *string {
	if ref == nil || baseURL == constant.Empty || !strings.HasPrefix(*ref, "/") {
		return ref
	}

	resolved := strings.TrimSuffix(baseURL, "/") + *ref

	return &resolved
}

type BookingDetailResponse struct {
	BookingID         string  `json:"booking_id"`
	AdvertiserID      string  `json:"advertiser_id"`
	AdvertiserName    *string `json:"advertiser_name"`
	BillboardID       string  `json:"billboard_id"`
	BillboardLocation string  `json:"billboard_location"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	Status            string  `json:"status"`
	FileURL           *string `json:"file_url"`
	CreatedAt         string  `json:"created_at"`
}

func (r *BookingDetailResponse) FromModel(detail bookingModel.Detail, assetBaseURL string) {
	r.BookingID = detail.BookingID
	r.AdvertiserID = detail.AdvertiserID
	r.AdvertiserName = detail.AdvertiserName
	r.BillboardID = detail.BillboardID
	r.BillboardLocation = detail.BillboardLocation
	r.StartDate = detail.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = detail.EndDate.Format(constant.DateOnlyFormat)
	r.Status = detail.Status
	r.FileURL = ResolveFileRef(detail.FileURL, assetBaseURL)
	r.CreatedAt = timezone.Format(detail.CreatedAt, constant.DateFormat)
}

type GetBookingDetailsResponse struct {
	Details   []BookingDetailResponse `json:"details"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetBookingDetailsResponse) FromModels(details []bookingModel.Detail, totalData, limit int, assetBaseURL string) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Details = make([]BookingDetailResponse, len(details))
	for i, detail := range details {
		r.Details[i].FromModel(detail, assetBaseURL)
	}
}

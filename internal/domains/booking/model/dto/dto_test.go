package dto_test

import (
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"adscape/internal/domains/booking/model"
	"adscape/internal/domains/booking/model/dto"
	"adscape/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_DateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantErr   string
		wantStart time.Time
	}{
		{name: "valid range", start: "2024-01-01", end: "2024-01-05", wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "single day", start: "2024-01-01", end: "2024-01-01", wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", start: " 2024-01-01 ", end: "2024-01-02", wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "inverted", start: "2024-01-05", end: "2024-01-01", wantErr: "invalid range"},
		{name: "bad start", start: "01/01/2024", end: "2024-01-05", wantErr: "start_date"},
		{name: "bad end", start: "2024-01-01", end: "2024-02-30", wantErr: "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{StartDate: tt.start, EndDate: tt.end}

			start, _, err := req.DateRange()

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
		})
	}
}

func TestCreateBookingRequest_AssetReference(t *testing.T) {
	assert.Nil(t, (&dto.CreateBookingRequest{AssetRef: "   "}).AssetReference())

	ref := (&dto.CreateBookingRequest{AssetRef: " /u/1.png "}).AssetReference()
	if assert.NotNil(t, ref) {
		assert.Equal(t, "/u/1.png", *ref)
	}
}

func TestCreateBookingRequest_HasUpload(t *testing.T) {
	assert.False(t, (&dto.CreateBookingRequest{}).HasUpload())
	assert.False(t, (&dto.CreateBookingRequest{AdImage: &multipart.FileHeader{Filename: "ad.png"}}).HasUpload())
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	req := dto.CreateBookingRequest{AdvertiserID: " adv ", BillboardID: "b1"}
	booking := req.ToModel("ops", model.StatusPending, start, end)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "adv", booking.AdvertiserID)
	assert.Equal(t, "b1", booking.BillboardID)
	assert.Equal(t, "ops", booking.CreatedBy)
	assert.Nil(t, booking.CancelledAt)
	assert.NoError(t, booking.Validate())
}

func TestBookingResponse_FromModel(t *testing.T) {
	cancelledAt := time.Date(2024, 1, 3, 8, 30, 0, 0, time.UTC)

	var res dto.BookingResponse
	res.FromModel(model.Booking{
		ID:          "id",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:      model.StatusCancelled,
		CancelledAt: &cancelledAt,
	})

	assert.Equal(t, "2024-01-01", res.StartDate)
	assert.Equal(t, "2024-01-05", res.EndDate)
	assert.NotNil(t, res.CancelledAt)
}

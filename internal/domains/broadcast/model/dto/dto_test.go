package dto_test

import (
	"errors"
	"testing"

	bookingModel "adscape/internal/domains/booking/model"
	"adscape/internal/domains/broadcast/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(value string) *string {
	return &value
}

func TestResolveFileRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     *string
		baseURL string
		want    *string
	}{
		{name: "no creative", ref: nil, baseURL: "https://cdn.adscape.id", want: nil},
		{name: "relative reference", ref: ref("/uploads/1.png"), baseURL: "https://cdn.adscape.id/", want: ref("https://cdn.adscape.id/uploads/1.png")},
		{name: "absolute reference", ref: ref("https://bucket.s3.amazonaws.com/1.png"), baseURL: "https://cdn.adscape.id", want: ref("https://bucket.s3.amazonaws.com/1.png")},
		{name: "no base url", ref: ref("/uploads/1.png"), want: ref("/uploads/1.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.ResolveFileRef(tt.ref, tt.baseURL))
		})
	}
}

func TestLiveBroadcastsResponse_FromModels(t *testing.T) {
	var res dto.LiveBroadcastsResponse

	res.FromModels([]bookingModel.Detail{
		{BookingID: "b-1", BillboardID: "bb-1", BillboardLocation: "Jl. Sudirman", FileURL: ref("/uploads/b-1.png"), Status: bookingModel.StatusScheduled},
		{BookingID: "b-2", BillboardID: "bb-2", BillboardLocation: "Blok M", Status: bookingModel.StatusScheduled},
	}, "https://cdn.adscape.id")

	require.Len(t, res.Broadcasts, 2)
	assert.Equal(t, "https://cdn.adscape.id/uploads/b-1.png", *res.Broadcasts[0].FileRef)
	assert.Nil(t, res.Broadcasts[1].FileRef)
	assert.False(t, res.Degraded)
}

func TestDegradedBroadcasts(t *testing.T) {
	res := dto.DegradedBroadcasts(errors.New("storage failure: timeout"))

	assert.True(t, res.Degraded)
	assert.NotNil(t, res.Broadcasts)
	assert.Empty(t, res.Broadcasts)
	assert.Equal(t, "storage failure: timeout", res.Error)
}

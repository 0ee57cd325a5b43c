package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"adscape/config"
	otelMocks "adscape/infras/otel/mocks"
	bookingMocks "adscape/internal/domains/booking/mocks"
	bookingModel "adscape/internal/domains/booking/model"
	"adscape/internal/domains/broadcast/model/dto"
	"adscape/internal/domains/broadcast/service"
	cacheMocks "adscape/shared/cache/mocks"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, liveTTL int) (service.Broadcast, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := bookingMocks.NewMockBooking(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Cache.LiveTTL = liveTTL
	cfg.App.AssetBaseURL = "https://adscape.id/"

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, cfg, cache, otelMocks.NewOtel()), repo, cache
}

func strPtr(s string) *string {
	return &s
}

func TestBroadcastService_ListLiveBroadcasts(t *testing.T) {
	scheduled := []bookingModel.Detail{
		{
			BookingID:         "b-1",
			BillboardLocation: "Jl. Sudirman",
			AdvertiserName:    strPtr("Kopi Senja"),
			FileURL:           strPtr("/u/1.png"),
			Status:            bookingModel.StatusScheduled,
		},
		{
			BookingID:         "b-2",
			BillboardLocation: "Jl. Thamrin",
			FileURL:           strPtr("https://cdn.adscape.id/creatives/2.mp4"),
			Status:            bookingModel.StatusScheduled,
		},
		{
			BookingID:         "b-3",
			BillboardLocation: "Blok M",
			Status:            bookingModel.StatusScheduled,
		},
	}

	t.Run("scheduled bookings with resolved references", func(t *testing.T) {
		svc, repo, _ := newService(t, 0)

		repo.EXPECT().ListJoined(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]bookingModel.Detail, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "bookings.status = :status")
				assert.Equal(t, bookingModel.StatusScheduled, args["status"])

				return scheduled, nil
			})

		res, err := svc.ListLiveBroadcasts(context.Background())

		require.NoError(t, err)
		assert.False(t, res.Degraded)
		require.Len(t, res.Broadcasts, 3)
		assert.Equal(t, "https://adscape.id/u/1.png", *res.Broadcasts[0].FileRef)
		assert.Equal(t, "https://cdn.adscape.id/creatives/2.mp4", *res.Broadcasts[1].FileRef)
		assert.Nil(t, res.Broadcasts[2].FileRef)
		assert.Equal(t, "Kopi Senja", *res.Broadcasts[0].AdvertiserName)
	})

	t.Run("storage error degrades to an empty snapshot", func(t *testing.T) {
		svc, repo, _ := newService(t, 0)

		repo.EXPECT().ListJoined(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		res, err := svc.ListLiveBroadcasts(context.Background())

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.True(t, res.Degraded)
		assert.NotNil(t, res.Broadcasts)
		assert.Empty(t, res.Broadcasts)
		assert.Contains(t, res.Error, "connection refused")
	})

	t.Run("snapshot served from cache", func(t *testing.T) {
		svc, _, cache := newService(t, 5)

		cache.EXPECT().Get(gomock.Any(), "broadcast:live", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.LiveBroadcastsResponse)
				require.True(t, ok)

				res.Broadcasts = []dto.Broadcast{{BookingID: "b-1"}}

				return nil
			})

		res, err := svc.ListLiveBroadcasts(context.Background())

		require.NoError(t, err)
		require.Len(t, res.Broadcasts, 1)
	})

	t.Run("empty ledger", func(t *testing.T) {
		svc, repo, cache := newService(t, 5)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().ListJoined(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Detail{}, nil)

		res, err := svc.ListLiveBroadcasts(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, res.Broadcasts)
		assert.Empty(t, res.Broadcasts)
	})
}

func TestBroadcastService_ListBookingDetails(t *testing.T) {
	svc, repo, cache := newService(t, 0)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	repo.EXPECT().CountJoined(gomock.Any(), gomock.Any()).Return(11, nil)
	repo.EXPECT().ListJoined(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Detail{
		{BookingID: "b-1", StartDate: day, EndDate: day.AddDate(0, 0, 4), Status: bookingModel.StatusPending, CreatedAt: day},
	}, nil)

	res, err := svc.ListBookingDetails(context.Background(), gDto.QueryParams{Page: 1, Limit: 5}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	require.Len(t, res.Details, 1)
	assert.Equal(t, "2024-01-05", res.Details[0].EndDate)
}

func TestResolveFileRef(t *testing.T) {
	tests := []struct {
		name string
		ref  *string
		base string
		want *string
	}{
		{name: "nil reference", ref: nil, base: "https://adscape.id", want: nil},
		{name: "relative", ref: strPtr("/u/1.png"), base: "https://adscape.id", want: strPtr("https://adscape.id/u/1.png")},
		{name: "relative with trailing slash base", ref: strPtr("/u/1.png"), base: "https://adscape.id/", want: strPtr("https://adscape.id/u/1.png")},
		{name: "absolute", ref: strPtr("https://cdn/x.png"), base: "https://adscape.id", want: strPtr("https://cdn/x.png")},
		{name: "no base configured", ref: strPtr("/u/1.png"), base: "", want: strPtr("/u/1.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.ResolveFileRef(tt.ref, tt.base))
		})
	}
}

package broadcast_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "adscape/infras/otel/mocks"
	"adscape/internal/domains/broadcast/mocks"
	"adscape/internal/domains/broadcast/model/dto"
	"adscape/internal/handlers/broadcast"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockBroadcastService) {
	t.Helper()

	svc := mocks.NewMockBroadcastService(gomock.NewController(t))
	handler := broadcast.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func TestBroadcastHandler_GetLiveBroadcasts(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		router, svc := newRouter(t)

		ref := "https://adscape.id/u/1.png"
		svc.EXPECT().ListLiveBroadcasts(gomock.Any()).Return(dto.LiveBroadcastsResponse{
			Broadcasts: []dto.Broadcast{{BookingID: "b-1", BillboardLocation: "Jl. Sudirman", FileRef: &ref}},
		}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/broadcasts/live", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Data dto.LiveBroadcastsResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Data.Broadcasts, 1)
		assert.Equal(t, ref, *res.Data.Broadcasts[0].FileRef)
		assert.False(t, res.Data.Degraded)
	})

	t.Run("degraded snapshot answers 503 with a body", func(t *testing.T) {
		router, svc := newRouter(t)

		err := failure.StorageFailure(errors.New("connection refused"))
		svc.EXPECT().ListLiveBroadcasts(gomock.Any()).Return(dto.DegradedBroadcasts(err), err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/broadcasts/live", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var res struct {
			Data dto.LiveBroadcastsResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Data.Degraded)
		assert.NotNil(t, res.Data.Broadcasts)
		assert.Empty(t, res.Data.Broadcasts)
		assert.NotEmpty(t, res.Data.Error)
	})
}

func TestBroadcastHandler_GetBookingDetails(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().ListBookingDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingDetailsResponse, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "bookings.status = :status")
				assert.Equal(t, "Cancelled", args["status"])

				return dto.GetBookingDetailsResponse{Details: []dto.BookingDetailResponse{}}, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/broadcasts?status=Cancelled", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().ListBookingDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.GetBookingDetailsResponse{}, failure.StorageFailure(errors.New("timeout")))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/broadcasts", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

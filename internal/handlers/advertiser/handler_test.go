package advertiser_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "adscape/infras/otel/mocks"
	"adscape/internal/domains/advertiser/mocks"
	"adscape/internal/domains/advertiser/model/dto"
	"adscape/internal/handlers/advertiser"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const advertiserID = "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"

func newRouter(t *testing.T) (http.Handler, *mocks.MockAdvertiserService) {
	t.Helper()

	svc := mocks.NewMockAdvertiserService(gomock.NewController(t))
	handler := advertiser.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func TestAdvertiserHandler_CreateAdvertiser(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *mocks.MockAdvertiserService)
		wantCode int
	}{
		{
			name: "created",
			body: `{"company_name":"Kopi Senja","contact_email":"ads@kopisenja.id"}`,
			mock: func(svc *mocks.MockAdvertiserService) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateAdvertiserRequest{CompanyName: "Kopi Senja", ContactEmail: "ads@kopisenja.id"}).
					Return(dto.AdvertiserResponse{ID: advertiserID, CompanyName: "Kopi Senja"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing company name",
			body:     `{"contact_email":"ads@kopisenja.id"}`,
			mock:     func(_ *mocks.MockAdvertiserService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid email",
			body:     `{"company_name":"Kopi Senja","contact_email":"kopisenja"}`,
			mock:     func(_ *mocks.MockAdvertiserService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"company_name":"Kopi Senja"}`,
			mock: func(svc *mocks.MockAdvertiserService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.AdvertiserResponse{}, failure.StorageFailure(errors.New("connection refused")))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.mock(svc)

			req := httptest.NewRequest(http.MethodPost, "/v1/advertisers", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAdvertiserHandler_GetAdvertisers(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAdvertisersResponse, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "LOWER(advertisers.company_name) LIKE LOWER(:company_name)")
			assert.Equal(t, "%senja%", args["company_name"])
			assert.Equal(t, 2, params.Page)

			return dto.GetAdvertisersResponse{Advertisers: []dto.AdvertiserResponse{}}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/advertisers?company_name=senja&page=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdvertiserHandler_GetAdvertiserByID(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "found", wantCode: http.StatusOK},
		{name: "missing", err: failure.NotFound("advertiser not found"), wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().Get(gomock.Any(), advertiserID).Return(dto.AdvertiserResponse{ID: advertiserID}, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/advertisers/"+advertiserID, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

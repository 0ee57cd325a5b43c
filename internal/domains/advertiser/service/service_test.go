package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"adscape/config"
	otelMocks "adscape/infras/otel/mocks"
	advertiserMocks "adscape/internal/domains/advertiser/mocks"
	"adscape/internal/domains/advertiser/model"
	"adscape/internal/domains/advertiser/model/dto"
	"adscape/internal/domains/advertiser/service"
	cacheMocks "adscape/shared/cache/mocks"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const advertiserID = "5d7b1a2c-9f43-4e2a-8c6b-0e1f2a3b4c5d"

func newService(t *testing.T) (service.Advertiser, *advertiserMocks.MockAdvertiser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := advertiserMocks.NewMockAdvertiser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo, mockCache
}

func TestAdvertiserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAdvertiserRequest
		setupMock func(repo *advertiserMocks.MockAdvertiser)
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateAdvertiserRequest{CompanyName: "Kopi Senja", ContactEmail: "ads@kopisenja.id"},
			setupMock: func(repo *advertiserMocks.MockAdvertiser) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, advertiser model.Advertiser) error {
						assert.Equal(t, "Kopi Senja", advertiser.CompanyName)
						assert.Equal(t, "ads@kopisenja.id", *advertiser.ContactEmail)

						return nil
					})
			},
		},
		{
			name:      "blank company name",
			req:       dto.CreateAdvertiserRequest{CompanyName: "   "},
			setupMock: func(_ *advertiserMocks.MockAdvertiser) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.CreateAdvertiserRequest{CompanyName: "Kopi Senja"},
			setupMock: func(repo *advertiserMocks.MockAdvertiser) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestAdvertiserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *advertiserMocks.MockAdvertiser, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "found",
			id:   advertiserID,
			setupMock: func(repo *advertiserMocks.MockAdvertiser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Advertiser{ID: advertiserID, CompanyName: "Kopi Senja"}, nil)
			},
		},
		{
			name: "missing",
			id:   advertiserID,
			setupMock: func(repo *advertiserMocks.MockAdvertiser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Advertiser{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "malformed id",
			id:        "not-a-uuid",
			setupMock: func(_ *advertiserMocks.MockAdvertiser, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, advertiserID, res.ID)
		})
	}
}

func TestAdvertiserService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Advertiser{
		{ID: advertiserID, CompanyName: "Kopi Senja"},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Advertisers, 1)
}

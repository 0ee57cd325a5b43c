package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"adscape/config"
	otelMocks "adscape/infras/otel/mocks"
	"adscape/infras/postgres"
	pgMocks "adscape/infras/postgres/mocks"
	billboardMocks "adscape/internal/domains/billboard/mocks"
	"adscape/internal/domains/billboard/model"
	"adscape/internal/domains/billboard/model/dto"
	"adscape/internal/domains/billboard/service"
	cacheMocks "adscape/shared/cache/mocks"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const billboardID = "1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e"

type mocks struct {
	repo       *billboardMocks.MockBillboard
	transactor *pgMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Billboard, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		repo:       billboardMocks.NewMockBillboard(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(m.repo, m.transactor, cfg, m.cache, otelMocks.NewOtel()), m
}

func inTransaction(m mocks) {
	m.transactor.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		})
}

func TestBillboardService_Create(t *testing.T) {
	price := 750000.0

	tests := []struct {
		name      string
		req       dto.CreateBillboardRequest
		setupMock func(m mocks)
		wantCode  int
	}{
		{
			name: "new billboards start available",
			req:  dto.CreateBillboardRequest{Location: " Jl. Thamrin ", Price: &price},
			setupMock: func(m mocks) {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, billboard model.Billboard) error {
						assert.Equal(t, "Jl. Thamrin", billboard.Location)
						assert.True(t, billboard.Availability)
						assert.Equal(t, price, *billboard.PricePerDay)
						assert.Equal(t, "agency-42", billboard.CreatedBy)

						return nil
					})
			},
		},
		{
			name:      "blank location",
			req:       dto.CreateBillboardRequest{Location: "  "},
			setupMock: func(_ mocks) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.CreateBillboardRequest{Location: "Blok M"},
			setupMock: func(m mocks) {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "agency-42")

			res, err := svc.Create(ctx, tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.True(t, res.Availability)
		})
	}
}

func TestBillboardService_GetAvailability(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(m mocks)
		want      bool
		wantCode  int
	}{
		{
			name: "booked",
			id:   billboardID,
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetAvailability(gomock.Any(), billboardID).Return(false, true, nil)
			},
			want: false,
		},
		{
			name: "free",
			id:   billboardID,
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetAvailability(gomock.Any(), billboardID).Return(true, true, nil)
			},
			want: true,
		},
		{
			name: "unknown billboard",
			id:   billboardID,
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetAvailability(gomock.Any(), billboardID).Return(false, false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "malformed id",
			id:        "42",
			setupMock: func(_ mocks) {},
			wantCode:  http.StatusNotFound,
		},
		{
			name: "storage error",
			id:   billboardID,
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetAvailability(gomock.Any(), billboardID).Return(false, false, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.GetAvailability(context.Background(), tt.id)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
			assert.Equal(t, tt.want, res.Availability)
		})
	}
}

func TestBillboardService_Update(t *testing.T) {
	t.Run("missing billboard", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateBillboardRequest{Location: "Senayan"}, billboardID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("availability is never written", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Senayan", fields[model.FieldLocation])
				assert.NotContains(t, fields, model.FieldAvailability)

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateBillboardRequest{Location: " Senayan "}, billboardID)

		assert.NoError(t, err)
	})
}

func TestBillboardService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m mocks)
		wantCode  int
	}{
		{
			name: "available billboard is removed",
			setupMock: func(m mocks) {
				inTransaction(m)
				m.repo.EXPECT().DeleteIfAvailableTx(gomock.Any(), gomock.Any(), billboardID).Return(true, nil)
			},
		},
		{
			name: "booked billboard is kept",
			setupMock: func(m mocks) {
				inTransaction(m)
				m.repo.EXPECT().DeleteIfAvailableTx(gomock.Any(), gomock.Any(), billboardID).Return(false, nil)
				m.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), billboardID).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown billboard",
			setupMock: func(m mocks) {
				inTransaction(m)
				m.repo.EXPECT().DeleteIfAvailableTx(gomock.Any(), gomock.Any(), billboardID).Return(false, nil)
				m.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), billboardID).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "storage error",
			setupMock: func(m mocks) {
				inTransaction(m)
				m.repo.EXPECT().DeleteIfAvailableTx(gomock.Any(), gomock.Any(), billboardID).Return(false, errors.New("deadlock detected"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.Delete(context.Background(), billboardID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

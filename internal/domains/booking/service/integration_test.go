//go:build integration

package service_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"
	"testing"

	"adscape/config"
	kafkaMocks "adscape/infras/kafka/mocks"
	otelMocks "adscape/infras/otel/mocks"
	"adscape/infras/postgres"
	advertiserRepo "adscape/internal/domains/advertiser/repository"
	assetMocks "adscape/internal/domains/asset/mocks"
	assetRepo "adscape/internal/domains/asset/repository"
	billboardRepo "adscape/internal/domains/billboard/repository"
	"adscape/internal/domains/booking/model/dto"
	"adscape/internal/domains/booking/repository"
	"adscape/internal/domains/booking/service"
	cacheMocks "adscape/shared/cache/mocks"
	"adscape/shared/failure"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Run with: ADSCAPE_TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/domains/booking/service/
const envTestDatabaseURL = "ADSCAPE_TEST_DATABASE_URL"

func integrationService(t *testing.T) (service.Booking, *sqlx.DB) {
	t.Helper()

	dsn := os.Getenv(envTestDatabaseURL)
	if dsn == "" {
		t.Skipf("%s is not set", envTestDatabaseURL)
	}

	mig, err := migrate.New("file://../../../../migrations/postgres", dsn)
	require.NoError(t, err)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	db := sqlx.MustConnect("postgres", dsn)
	t.Cleanup(func() { _ = db.Close() })

	conn := &postgres.Connection{Read: db, Write: db}
	ot := otelMocks.NewOtel()

	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache disabled")).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	storage := assetMocks.NewMockStorage(ctrl)
	storage.EXPECT().Discard(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.TransactionTimeoutSeconds = 10

	svc := service.New(
		repository.New(conn, ot),
		billboardRepo.New(conn, ot),
		advertiserRepo.New(conn, ot),
		assetRepo.New(conn, ot),
		storage,
		postgres.NewTransactor(conn, ot),
		kafkaMocks.NewMockClient(ctrl),
		cfg,
		redisCache,
		ot,
	)

	return svc, db
}

func seedParties(t *testing.T, db *sqlx.DB) (advertiser, billboard string) {
	t.Helper()

	advertiser, billboard = uuid.NewString(), uuid.NewString()

	db.MustExec(`INSERT INTO advertisers (id, company_name) VALUES ($1, 'Integration Co')`, advertiser)
	db.MustExec(`INSERT INTO billboards (billboard_id, location) VALUES ($1, 'Jl. Integration')`, billboard)

	return advertiser, billboard
}

func availability(t *testing.T, db *sqlx.DB, billboard string) bool {
	t.Helper()

	var available bool
	require.NoError(t, db.Get(&available, `SELECT availability FROM billboards WHERE billboard_id = $1`, billboard))

	return available
}

func TestIntegration_ConcurrentCreatesOneWinner(t *testing.T) {
	svc, db := integrationService(t)
	advertiser, billboard := seedParties(t, db)

	const callers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   []string
		conflicts int
	)

	for range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			res, err := svc.CreateBooking(context.Background(), dto.CreateBookingRequest{
				AdvertiserID: advertiser,
				BillboardID:  billboard,
				StartDate:    "2025-03-01",
				EndDate:      "2025-03-31",
			})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				winners = append(winners, res.ID)
			case failure.HasCode(err, http.StatusConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, callers-1, conflicts)
	assert.False(t, availability(t, db, billboard))

	require.NoError(t, svc.CancelBooking(context.Background(), winners[0]))
	assert.True(t, availability(t, db, billboard))

	var assets int
	require.NoError(t, db.Get(&assets, `SELECT COUNT(*) FROM ad_assets WHERE booking_id = $1`, winners[0]))
	assert.Zero(t, assets)

	err := svc.CancelBooking(context.Background(), winners[0])
	assert.True(t, failure.HasCode(err, http.StatusNotFound))
}

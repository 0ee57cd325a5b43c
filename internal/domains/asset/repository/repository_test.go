package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	otelMocks "adscape/infras/otel/mocks"
	"adscape/infras/postgres"
	"adscape/internal/domains/asset/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bookingID = "9a8b7c6d-5e4f-4321-9abc-def012345678"
	fileURL   = "https://cdn.adscape.id/creatives/a.png"
)

func setup(t *testing.T) (repository.Asset, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.New(conn, otelMocks.NewOtel()), sqlxDB, mock
}

func TestAssetRepository_AttachTx(t *testing.T) {
	ref := fileURL

	tests := []struct {
		name    string
		fileRef *string
		wantArg any
	}{
		{name: "creative reference", fileRef: &ref, wantArg: fileURL},
		{name: "no creative is stored as NULL", fileRef: nil, wantArg: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := setup(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ad_assets (booking_id, file_url, created_at, modified_at, created_by, modified_by) VALUES ($1, $2, $3, $4, $5, $6)")).
				WithArgs(bookingID, tt.wantArg, sqlmock.AnyArg(), sqlmock.AnyArg(), "guest", "guest").
				WillReturnResult(sqlmock.NewResult(0, 1))

			tx, err := db.Beginx()
			require.NoError(t, err)

			assert.NoError(t, repo.AttachTx(context.Background(), tx, bookingID, tt.fileRef, "guest"))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAssetRepository_GetTx(t *testing.T) {
	ref := fileURL

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    *string
		wantErr bool
	}{
		{
			name: "stored reference",
			rows: sqlmock.NewRows([]string{"file_url"}).AddRow(fileURL),
			want: &ref,
		},
		{
			name: "NULL reference",
			rows: sqlmock.NewRows([]string{"file_url"}).AddRow(nil),
		},
		{
			name: "no row",
			err:  sql.ErrNoRows,
		},
		{
			name:    "query failure",
			err:     errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := setup(t)

			mock.ExpectBegin()

			query := mock.ExpectQuery(regexp.QuoteMeta("SELECT file_url FROM ad_assets WHERE booking_id = $1")).
				WithArgs(bookingID)

			if tt.err != nil {
				query.WillReturnError(tt.err)
			} else {
				query.WillReturnRows(tt.rows)
			}

			tx, err := db.Beginx()
			require.NoError(t, err)

			got, err := repo.GetTx(context.Background(), tx, bookingID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAssetRepository_RemoveTx(t *testing.T) {
	repo, db, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ad_assets  WHERE (ad_assets.booking_id = $1)")).
		WithArgs(bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)

	assert.NoError(t, repo.RemoveTx(context.Background(), tx, bookingID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepository_SharedTx(t *testing.T) {
	tests := []struct {
		name       string
		shared     bool
		err        error
		wantShared bool
		wantErr    bool
	}{
		{name: "referenced by another booking", shared: true, wantShared: true},
		{name: "only this booking", shared: false, wantShared: false},
		{name: "query failure", err: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := setup(t)

			mock.ExpectBegin()

			query := mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM ad_assets WHERE file_url = $1 AND booking_id <> $2)")).
				WithArgs(fileURL, bookingID)

			if tt.err != nil {
				query.WillReturnError(tt.err)
			} else {
				query.WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.shared))
			}

			tx, err := db.Beginx()
			require.NoError(t, err)

			shared, err := repo.SharedTx(context.Background(), tx, fileURL, bookingID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantShared, shared)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

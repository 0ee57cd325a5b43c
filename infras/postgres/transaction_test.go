package postgres_test

import (
	"context"
	"errors"
	"testing"

	otelMocks "adscape/infras/otel/mocks"
	"adscape/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func TestTransactor_WithTransaction(t *testing.T) {
	errWork := errors.New("work failed")

	tests := []struct {
		name      string
		fn        postgres.TxFunc
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "commits when work succeeds",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, "UPDATE billboards SET availability = false")

				return err
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE billboards").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rolls back when work fails",
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return errWork
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: errWork,
		},
		{
			name: "begin failure",
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				t.Fatal("work must not run without a transaction")

				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			anyErr: true,
		},
		{
			name: "commit failure",
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			anyErr: true,
		},
		{
			name: "rollback failure keeps work error",
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return errWork
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("bad connection"))
			},
			wantErr: errWork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setupMock(mock)

			transactor := postgres.NewTransactor(conn, otelMocks.NewOtel())
			err := transactor.WithTransaction(context.Background(), tt.fn)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactor_WithTransaction_Panic(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	transactor := postgres.NewTransactor(conn, otelMocks.NewOtel())

	assert.PanicsWithValue(t, "boom", func() {
		_ = transactor.WithTransaction(context.Background(), func(_ context.Context, _ *sqlx.Tx) error {
			panic("boom")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

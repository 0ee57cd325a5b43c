package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adscape/infras/otel"
	"adscape/infras/postgres"
	"adscape/internal/domains/asset/model"
	"adscape/shared"
	"adscape/shared/constant"
	"adscape/shared/logger"
	gModel "adscape/shared/model"
	gRepo "adscape/shared/repository"
	"adscape/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const (
	queryGetFileURL    = `SELECT file_url FROM ad_assets WHERE booking_id = $1`
	querySharedFileURL = `SELECT EXISTS(SELECT 1 FROM ad_assets WHERE file_url = $1 AND booking_id <> $2)`
)

type Asset interface {
	// AttachTx records fileRef for the booking. A nil fileRef is stored as NULL.
	AttachTx(ctx context.Context, tx *sqlx.Tx, bookingID string, fileRef *string, user string) error
	// Get returns nil for both a missing row and a NULL reference.
	Get(ctx context.Context, bookingID string) (*string, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (*string, error)
	RemoveTx(ctx context.Context, tx *sqlx.Tx, bookingID string) error
	// SharedTx reports whether a booking other than bookingID still references fileURL.
	SharedTx(ctx context.Context, tx *sqlx.Tx, fileURL, bookingID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Asset]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Asset {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Asset](model.EntityName, model.TableName, model.FieldBookingID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) AttachTx(ctx context.Context, tx *sqlx.Tx, bookingID string, fileRef *string, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".asset.AttachTx")
	defer scope.End()

	now := timezone.Now()

	return r.InsertTx(ctx, tx, model.Asset{ //nolint:wrapcheck
		BookingID: bookingID,
		FileURL:   fileRef,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	})
}

func (r *repositoryImpl) Get(ctx context.Context, bookingID string) (*string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".asset.Get")
	defer scope.End()

	asset, err := r.Repository.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName), model.FieldFileURL)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return asset.FileURL, nil
}

func (r *repositoryImpl) GetTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (*string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".asset.GetTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetFileURL)

	var fileURL sql.NullString

	err := tx.GetContext(ctx, &fileURL, queryGetFileURL, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	if !fileURL.Valid {
		return nil, nil
	}

	return &fileURL.String, nil
}

func (r *repositoryImpl) RemoveTx(ctx context.Context, tx *sqlx.Tx, bookingID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".asset.RemoveTx")
	defer scope.End()

	return r.DeleteTx(ctx, tx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) SharedTx(ctx context.Context, tx *sqlx.Tx, fileURL, bookingID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".asset.SharedTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySharedFileURL)

	var inUse bool

	if err := tx.GetContext(ctx, &inUse, querySharedFileURL, fileURL, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check references (%s): %w", model.EntityName, err)
	}

	return inUse, nil
}

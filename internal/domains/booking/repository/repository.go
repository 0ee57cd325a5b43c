package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"adscape/infras/otel"
	"adscape/infras/postgres"
	"adscape/internal/domains/booking/model"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/logger"
	gRepo "adscape/shared/repository"
	"adscape/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const (
	queryGetForUpdate = `SELECT id, advertiser_id, billboard_id, start_date, end_date, status, cancelled_at,
		created_at, modified_at, created_by, modified_by
		FROM bookings WHERE id = $1 FOR UPDATE`
	queryMarkCancelled = `UPDATE bookings SET status = $1, cancelled_at = $2, modified_at = $2
		WHERE id = $3 AND status <> $1`
	queryTransitionStatus = `UPDATE bookings SET status = $1, modified_at = $2 WHERE id = $3 AND status = $4`
)

var ErrNotActive = errors.New("booking is not active")

type Booking interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	// GetForUpdateTx locks the booking row until tx ends. A zero Booking means no row.
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error)
	// MarkCancelledTx archives the booking. ErrNotActive when it was already cancelled.
	MarkCancelledTx(ctx context.Context, tx *sqlx.Tx, id string, at time.Time) error
	// TransitionStatus moves the booking from one status to another in a single conditional write.
	TransitionStatus(ctx context.Context, id, from, to string) (changed bool, err error)

	ListJoined(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error)
	CountJoined(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	details gRepo.Repository[model.Detail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.Detail]("booking_detail", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertTx refuses rows that fail Validate before touching the database.
func (r *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertTx")
	defer scope.End()

	if err := booking.Validate(); err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return r.Repository.InsertTx(ctx, tx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetForUpdateTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetForUpdate)

	var booking model.Booking

	err := tx.GetContext(ctx, &booking, queryGetForUpdate, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to lock data (%s): %w", model.EntityName, err)
	}

	return booking, nil
}

func (r *repositoryImpl) MarkCancelledTx(ctx context.Context, tx *sqlx.Tx, id string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.MarkCancelledTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryMarkCancelled)

	result, err := tx.ExecContext(ctx, queryMarkCancelled, model.StatusCancelled, at, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to cancel data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		return ErrNotActive
	}

	return nil
}

func (r *repositoryImpl) TransitionStatus(ctx context.Context, id, from, to string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionStatus")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: queryTransitionStatus,
		"from":                         from,
		"to":                           to,
	})

	result, err := r.db.Write.ExecContext(ctx, queryTransitionStatus, to, timezone.Now(), id, from)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to transition data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) ListJoined(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListJoined")
	defer scope.End()

	details, err := r.details.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if details == nil {
		details = []model.Detail{}
	}

	return details, nil
}

func (r *repositoryImpl) CountJoined(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountJoined")
	defer scope.End()

	return r.details.Count(ctx, filter) //nolint:wrapcheck
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adscape/infras/otel"
	"adscape/infras/postgres"
	"adscape/internal/domains/billboard/model"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/logger"
	gRepo "adscape/shared/repository"
	"adscape/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const (
	querySetAvailability = `UPDATE billboards SET availability = $1, modified_at = $2
		WHERE billboard_id = $3 AND availability = $4`
	queryExist             = `SELECT EXISTS(SELECT 1 FROM billboards WHERE billboard_id = $1)`
	queryGetAvailability   = `SELECT availability FROM billboards WHERE billboard_id = $1`
	queryDeleteIfAvailable = `DELETE FROM billboards WHERE billboard_id = $1 AND availability = true`
)

type Billboard interface {
	Insert(ctx context.Context, model model.Billboard) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Billboard, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Billboard, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	// ExistTx checks for the billboard inside tx so the answer is consistent with the tx's own writes.
	ExistTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error)
	// SetAvailabilityTx moves availability to the given value only if it currently holds the opposite
	// one. changed is false when no row matched.
	SetAvailabilityTx(ctx context.Context, tx *sqlx.Tx, id string, available bool) (changed bool, err error)
	// DeleteIfAvailableTx removes the billboard unless it is booked.
	DeleteIfAvailableTx(ctx context.Context, tx *sqlx.Tx, id string) (deleted bool, err error)
	// GetAvailability reads from the primary so a flip committed a moment ago is visible.
	GetAvailability(ctx context.Context, id string) (available, found bool, err error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Billboard]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Billboard {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Billboard](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ExistTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billboard.ExistTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryExist)

	var exist bool

	if err := tx.GetContext(ctx, &exist, queryExist, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}

func (r *repositoryImpl) SetAvailabilityTx(ctx context.Context, tx *sqlx.Tx, id string, available bool) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billboard.SetAvailabilityTx")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: querySetAvailability,
		model.FieldAvailability:        available,
	})

	result, err := tx.ExecContext(ctx, querySetAvailability, available, timezone.Now(), id, !available)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to set availability (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) DeleteIfAvailableTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billboard.DeleteIfAvailableTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDeleteIfAvailable)

	result, err := tx.ExecContext(ctx, queryDeleteIfAvailable, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) GetAvailability(ctx context.Context, id string) (bool, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billboard.GetAvailability")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetAvailability)

	var available bool

	err := r.db.Write.GetContext(ctx, &available, queryGetAvailability, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, false, fmt.Errorf("failed to get availability (%s): %w", model.EntityName, err)
	}

	return available, true, nil
}

package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"adscape/infras/otel"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const otelTransactionScopeName = "postgres.transaction"

// TxFunc runs inside a transaction. Returning an error rolls everything back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

type Transactor interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
}

type transactorImpl struct {
	db   *Connection
	otel otel.Otel
}

func NewTransactor(db *Connection, otel otel.Otel) Transactor {
	return &transactorImpl{
		db:   db,
		otel: otel,
	}
}

func (t *transactorImpl) WithTransaction(ctx context.Context, fn TxFunc) (err error) {
	ctx, scope := t.otel.NewScope(ctx, otelTransactionScopeName, otelTransactionScopeName+".WithTransaction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, context.Canceled) {
				log.Error().Err(rbErr).Msg("failed to rollback transaction after panic")
			}

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		scope.AddEvent("rollback")

		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")

			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	scope.AddEvent("commit")

	return nil
}

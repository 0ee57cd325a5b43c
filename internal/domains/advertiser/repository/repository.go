package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"adscape/infras/otel"
	"adscape/infras/postgres"
	"adscape/internal/domains/advertiser/model"
	gDto "adscape/shared/dto"
	gRepo "adscape/shared/repository"
)

type Advertiser interface {
	Insert(ctx context.Context, model model.Advertiser) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Advertiser, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Advertiser, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Advertiser]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Advertiser {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Advertiser](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

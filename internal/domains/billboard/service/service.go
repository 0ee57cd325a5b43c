package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Billboard=MockBillboardService

import (
	"context"
	"fmt"

	"adscape/config"
	"adscape/infras/otel"
	"adscape/infras/postgres"
	"adscape/internal/domains/billboard/model"
	"adscape/internal/domains/billboard/model/dto"
	"adscape/internal/domains/billboard/repository"
	bookingModel "adscape/internal/domains/booking/model"
	"adscape/shared"
	"adscape/shared/cache"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const errBillboardNotFound = "billboard not found"

type Billboard interface {
	Create(ctx context.Context, req dto.CreateBillboardRequest) (dto.BillboardResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBillboardsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BillboardResponse, error)
	GetAvailability(ctx context.Context, id string) (dto.AvailabilityResponse, error)
	Update(ctx context.Context, req dto.UpdateBillboardRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Billboard
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Billboard, transactor postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Billboard {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBillboardRequest) (res dto.BillboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billboard.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	billboard := req.ToModel(user)
	if billboard.Location == constant.Empty {
		return res, failure.BadRequestFromString("location is required") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, billboard); err != nil {
		log.Error().Err(err).Msg("failed to register billboard")

		return res, fmt.Errorf("failed to register billboard: %w", err)
	}

	res.FromModel(billboard)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CacheKeyGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheKeyCount)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBillboardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billboard.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetAll, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for billboards")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count billboards")

		return res, fmt.Errorf("failed to count billboards: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get billboards")

		return res, fmt.Errorf("failed to get billboards: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save billboards to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billboard.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyCount, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count billboards")

		return res, fmt.Errorf("failed to count billboards: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save billboard count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billboard.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for billboard")

		return res, nil
	}

	billboard, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get billboard")

		return res, fmt.Errorf("failed to get billboard: %w", err)
	}

	if billboard.ID == constant.Empty {
		return res, failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	res.FromModel(billboard)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save billboard to cache")
		}
	}()

	return res, nil
}

// GetAvailability is never served from cache.
func (s *serviceImpl) GetAvailability(ctx context.Context, id string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billboard.GetAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	available, found, err := s.repo.GetAvailability(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("billboard_id", id).Msg("failed to read availability")

		return res, failure.StorageFailure(err) // nolint:wrapcheck
	}

	if !found {
		return res, failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	return dto.AvailabilityResponse{ID: id, Availability: available}, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBillboardRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billboard.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check billboard existence")

		return fmt.Errorf("failed to check billboard existence: %w", err)
	}

	if !exist {
		return failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	req.Normalize()

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update billboard")

		return fmt.Errorf("failed to update billboard: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheKeyGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete billboard cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheKeyGetAll)
	}()

	return nil
}

// Delete refuses while a live booking holds the billboard. Archived bookings go with it.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billboard.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		deleted, err := s.repo.DeleteIfAvailableTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if deleted {
			return nil
		}

		exist, err := s.repo.ExistTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if !exist {
			return failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
		}

		return failure.Conflict("billboard has an active booking") // nolint:wrapcheck
	})
	if err != nil {
		if failure.IsFailure(err) {
			return err
		}

		log.Error().Err(err).Str("billboard_id", id).Msg("failed to delete billboard")

		return failure.StorageFailure(err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheKeyGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete billboard from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheKeyGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheKeyCount)

		// archived bookings of the billboard went with it
		shared.InvalidateCaches(c, s.cache, bookingModel.CacheKeyGet)
		shared.InvalidateCaches(c, s.cache, bookingModel.CacheKeyGetAll)
		shared.InvalidateCaches(c, s.cache, bookingModel.CacheKeyCount)
		shared.InvalidateCaches(c, s.cache, bookingModel.CacheKeyBroadcast)
	}()

	return nil
}

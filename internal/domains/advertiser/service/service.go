package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Advertiser=MockAdvertiserService

import (
	"context"
	"fmt"

	"adscape/config"
	"adscape/infras/otel"
	"adscape/internal/domains/advertiser/model"
	"adscape/internal/domains/advertiser/model/dto"
	"adscape/internal/domains/advertiser/repository"
	"adscape/shared"
	"adscape/shared/cache"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"

	"github.com/rs/zerolog/log"
)

type Advertiser interface {
	Create(ctx context.Context, req dto.CreateAdvertiserRequest) (dto.AdvertiserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAdvertisersResponse, error)
	Get(ctx context.Context, id string) (dto.AdvertiserResponse, error)
}

type serviceImpl struct {
	repo  repository.Advertiser
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Advertiser, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Advertiser {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAdvertiserRequest) (res dto.AdvertiserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".advertiser.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	advertiser := req.ToModel(user)
	if advertiser.CompanyName == constant.Empty {
		return res, failure.BadRequestFromString("company_name is required") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, advertiser); err != nil {
		log.Error().Err(err).Msg("failed to create advertiser")

		return res, fmt.Errorf("failed to create advertiser: %w", err)
	}

	res.FromModel(advertiser)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CacheKeyGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheKeyCount)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAdvertisersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".advertiser.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetAll, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count advertisers")

		return res, fmt.Errorf("failed to count advertisers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get advertisers")

		return res, fmt.Errorf("failed to get advertisers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save advertisers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AdvertiserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".advertiser.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound("advertiser not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	advertiser, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get advertiser")

		return res, fmt.Errorf("failed to get advertiser: %w", err)
	}

	if advertiser.ID == constant.Empty {
		return res, failure.NotFound("advertiser not found") // nolint:wrapcheck
	}

	res.FromModel(advertiser)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save advertiser to cache")
		}
	}()

	return res, nil
}

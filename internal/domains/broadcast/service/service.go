package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Broadcast=MockBroadcastService

import (
	"context"
	"fmt"

	"adscape/config"
	"adscape/infras/otel"
	bookingModel "adscape/internal/domains/booking/model"
	bookingRepo "adscape/internal/domains/booking/repository"
	"adscape/internal/domains/broadcast/model/dto"
	"adscape/shared"
	"adscape/shared/cache"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"

	"github.com/rs/zerolog/log"
)

var (
	cacheKeyLive    = shared.BuildCacheKey(bookingModel.CacheKeyBroadcast, "live")
	cacheKeyDetails = shared.BuildCacheKey(bookingModel.CacheKeyBroadcast, "details")
	cacheKeyCount   = shared.BuildCacheKey(bookingModel.CacheKeyBroadcast, "count")
)

// Broadcast is the read side of the booking ledger. It never writes.
type Broadcast interface {
	// ListLiveBroadcasts returns every Scheduled booking. On a storage error the response is
	// an empty, degraded snapshot and err is set.
	ListLiveBroadcasts(ctx context.Context) (dto.LiveBroadcastsResponse, error)
	ListBookingDetails(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingDetailsResponse, error)
}

type serviceImpl struct {
	repo  bookingRepo.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Broadcast {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) ListLiveBroadcasts(ctx context.Context) (res dto.LiveBroadcastsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".broadcast.ListLiveBroadcasts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ttl := s.cfg.Cache.LiveTTL

	if ttl > 0 {
		if cacheErr := s.cache.Get(ctx, cacheKeyLive, &res); cacheErr == nil {
			return res, nil
		}
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Value:    bookingModel.StatusScheduled,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
		},
	}

	details, err := s.repo.ListJoined(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list live broadcasts, serving a degraded snapshot")

		err = failure.StorageFailure(err)

		return dto.DegradedBroadcasts(err), err // nolint:wrapcheck
	}

	res.FromModels(details, s.cfg.App.AssetBaseURL)

	if ttl > 0 {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKeyLive, res, ttl); err != nil {
				log.Error().Err(err).Msg("failed to save live broadcasts to cache")
			}
		}()
	}

	return res, nil
}

func (s *serviceImpl) ListBookingDetails(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".broadcast.ListBookingDetails")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheKeyDetails, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking details")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	details, err := s.repo.ListJoined(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list booking details")

		return res, fmt.Errorf("failed to list booking details: %w", err)
	}

	res.FromModels(details, total, req.Limit, s.cfg.App.AssetBaseURL)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking details to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheKeyCount, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	res, err = s.repo.CountJoined(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking details")

		return res, fmt.Errorf("failed to count booking details: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking detail count to cache")
		}
	}()

	return res, nil
}

//go:build wireinject
// +build wireinject

package di

import (
	"adscape/config"
	"adscape/infras/kafka"
	"adscape/infras/otel"
	"adscape/infras/postgres"
	"adscape/infras/redis"
	"adscape/infras/s3"
	"adscape/shared/cache"
	"adscape/transport/event"
	"adscape/transport/http"
	"adscape/transport/http/middleware"
	"adscape/transport/http/router"

	advertiserRepository "adscape/internal/domains/advertiser/repository"
	advertiserService "adscape/internal/domains/advertiser/service"
	assetRepository "adscape/internal/domains/asset/repository"
	assetService "adscape/internal/domains/asset/service"
	billboardRepository "adscape/internal/domains/billboard/repository"
	billboardService "adscape/internal/domains/billboard/service"
	bookingRepository "adscape/internal/domains/booking/repository"
	bookingService "adscape/internal/domains/booking/service"
	broadcastService "adscape/internal/domains/broadcast/service"

	advertiserHandler "adscape/internal/handlers/advertiser"
	billboardHandler "adscape/internal/handlers/billboard"
	bookingHandler "adscape/internal/handlers/booking"
	broadcastHandler "adscape/internal/handlers/broadcast"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var advertiserDomain = wire.NewSet(
	advertiserRepository.New,
	advertiserService.New,
)

var billboardDomain = wire.NewSet(
	billboardRepository.New,
	billboardService.New,
)

var assetDomain = wire.NewSet(
	assetRepository.New,
	assetService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var broadcastDomain = wire.NewSet(
	broadcastService.New,
)

var domains = wire.NewSet(
	advertiserDomain,
	billboardDomain,
	assetDomain,
	bookingDomain,
	broadcastDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	billboardHandler.New,
	advertiserHandler.New,
	bookingHandler.New,
	broadcastHandler.New,
	router.New,
)

var events = wire.NewSet(
	event.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		events,
		http.New,
	)

	return &http.HTTP{}
}

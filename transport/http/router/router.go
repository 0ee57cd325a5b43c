package router

import (
	"time"

	"adscape/config"
	"adscape/internal/handlers/advertiser"
	"adscape/internal/handlers/billboard"
	"adscape/internal/handlers/booking"
	"adscape/internal/handlers/broadcast"
	"adscape/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "adscape/docs" //nolint:revive
)

const requestTimeout = 30 * time.Second

type DomainHandlers struct {
	Billboard  billboard.Handler
	Advertiser advertiser.Handler
	Booking    booking.Handler
	Broadcast  broadcast.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	auth           middleware.Auth
	cfg            *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)

	if r.cfg.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.cfg.App.CORS.AllowedOrigins,
			AllowedMethods:   r.cfg.App.CORS.AllowedMethods,
			AllowedHeaders:   r.cfg.App.CORS.AllowedHeaders,
			AllowCredentials: r.cfg.App.CORS.AllowCredentials,
			MaxAge:           r.cfg.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.app.Tracing)
	router.Use(r.app.RateLimit())
	router.Use(r.auth.Identify)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(chiMiddleware.Timeout(requestTimeout))

		r.DomainHandlers.Billboard.Router(routerGroup)
		r.DomainHandlers.Advertiser.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Broadcast.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		auth:           auth,
		cfg:            cfg,
	}
}

package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"adscape/config"
	"adscape/infras/otel"
	"adscape/infras/postgres"
	"adscape/shared/constant"
	"adscape/transport/event"
	"adscape/transport/http/response"
	"adscape/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	healthPath        = "/health"
)

type HTTP struct {
	Config   *config.Config
	Router   router.Router
	DB       *postgres.Connection
	Consumer event.Consumer
	Otel     otel.Otel

	state   atomic.Int32
	once    sync.Once
	handler http.Handler
}

func New(cfg *config.Config, r router.Router, db *postgres.Connection, consumer event.Consumer, otel otel.Otel) *HTTP {
	return &HTTP{
		Config:   cfg,
		Router:   r,
		DB:       db,
		Consumer: consumer,
		Otel:     otel,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve blocks until SIGINT or SIGTERM, then drains in-flight requests and closes the connections.
func (h *HTTP) Serve() {
	h.setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)

		h.Consumer.Start(consumerCtx)
	}()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()

	h.shutdown(server)

	cancelConsumer()
	<-consumerDone

	if err := h.Consumer.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to flush Kafka events")
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database connections")
	}

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), time.Duration(h.Config.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
	defer cancelFlush()

	if err := h.Otel.Shutdown(flushCtx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// ServeHTTP lets the whole application run behind another server, such as a serverless entry point.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	h.handler.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		mux := chi.NewRouter()

		h.Router.SetupRoutes(mux)
		mux.Get(healthPath, h.health)

		h.handler = mux
		h.state.Store(int32(ServerStateReady))
	})
}

// health answers 503 once shutdown starts so load balancers stop routing here during the grace period.
func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, "OK")
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) shutdown(server *http.Server) {
	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Development environment, skipping grace period.")
	} else {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not drain in time")
	}
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"adscape/config"
	otelMocks "adscape/infras/otel/mocks"
	"adscape/internal/handlers/advertiser"
	"adscape/internal/handlers/billboard"
	"adscape/internal/handlers/booking"
	"adscape/internal/handlers/broadcast"
	"adscape/shared/constant"
	"adscape/transport/http/middleware"
	"adscape/transport/http/router"

	"github.com/stretchr/testify/assert"
)

func newTestServer() *HTTP {
	cfg := &config.Config{}
	ot := otelMocks.NewOtel()
	auth := middleware.NewAuthMiddleware(ot, cfg)

	handlers := router.DomainHandlers{
		Billboard:  billboard.New(nil, ot),
		Advertiser: advertiser.New(nil, ot),
		Booking:    booking.New(nil, auth, ot),
		Broadcast:  broadcast.New(nil, ot),
	}

	return New(cfg, router.New(handlers, middleware.NewAppMiddleware(ot, cfg, nil), auth, cfg), nil, nil, ot)
}

func TestHTTP_Health(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantCode int
		wantBody string
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK, wantBody: "OK"},
		{name: "grace period", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable, wantBody: constant.ResponseErrorPrepareShutdown},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable, wantBody: constant.ResponseErrorPrepareShutdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer()
			server.setup()
			server.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHTTP_ServeHTTPSetsUpOnce(t *testing.T) {
	server := newTestServer()

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ServerStateReady, server.State())

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

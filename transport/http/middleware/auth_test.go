package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"adscape/config"
	otelMocks "adscape/infras/otel/mocks"
	"adscape/shared/constant"
	"adscape/transport/http/middleware"

	"github.com/stretchr/testify/assert"
)

func actorEcho(w http.ResponseWriter, r *http.Request) {
	actor, _ := r.Context().Value(constant.ContextKeyUserID).(string)

	_, _ = w.Write([]byte(actor))
}

func TestAuth_Identify(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		want     string
	}{
		{name: "client header", clientID: "agency-42", want: "agency-42"},
		{name: "blank header", clientID: "   ", want: constant.ContextGuest},
		{name: "no header", want: constant.ContextGuest},
	}

	auth := middleware.NewAuthMiddleware(otelMocks.NewOtel(), &config.Config{})
	handler := auth.Identify(http.HandlerFunc(actorEcho))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.clientID != "" {
				req.Header.Set(constant.RequestHeaderClientID, tt.clientID)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestAuth_APIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantCode   int
		wantActor  string
	}{
		{name: "matching key", configured: "s3cret", sent: "s3cret", wantCode: http.StatusOK, wantActor: constant.ContextInternal},
		{name: "wrong key", configured: "s3cret", sent: "guess", wantCode: http.StatusForbidden},
		{name: "missing key", configured: "s3cret", wantCode: http.StatusForbidden},
		{name: "key not configured", sent: "", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			auth := middleware.NewAuthMiddleware(otelMocks.NewOtel(), cfg)
			handler := auth.APIKey(http.HandlerFunc(actorEcho))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.sent != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.sent)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantActor != "" {
				assert.Equal(t, tt.wantActor, rec.Body.String())
			}
		})
	}
}

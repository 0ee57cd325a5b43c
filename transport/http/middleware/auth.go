package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"adscape/config"
	"adscape/infras/otel"
	"adscape/shared/constant"
	"adscape/shared/failure"
	"adscape/transport/http/response"
)

// Auth identifies the caller. There are no user accounts: the client id header is recorded
// as the actor of writes, and the API key guards internal operations.
type Auth interface {
	Identify(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// Identify stores the caller in the context, ContextGuest when the header is absent.
func (m *authImpl) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		actor := strings.TrimSpace(request.Header.Get(constant.RequestHeaderClientID))
		if actor == "" {
			actor = constant.ContextGuest
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, actor)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// APIKey for internal service-to-service calls. An unset key refuses every request.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		expected := m.cfg.App.APIKey

		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			err := failure.ForbiddenError

			scope.SetAttribute("http.source", "client")
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("http.source", "internal")
		scope.End()

		ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, constant.ContextInternal)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

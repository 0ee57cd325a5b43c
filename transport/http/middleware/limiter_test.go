package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"adscape/config"
	otelMocks "adscape/infras/otel/mocks"
	"adscape/shared"
	cacheMocks "adscape/shared/cache/mocks"
	"adscape/shared/constant"
	"adscape/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limitedHandler(t *testing.T, redisCache *cacheMocks.MockRedisCache) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)

	return app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	key := shared.BuildCacheKey("limiter", "10.0.0.7", "screens-cli/1.0")

	tests := []struct {
		name           string
		count          int64
		err            error
		wantCode       int
		wantRemaining  string
		wantRetryAfter string
	}{
		{name: "first request in window", count: 1, wantCode: http.StatusOK, wantRemaining: "4"},
		{name: "last allowed request", count: 5, wantCode: http.StatusOK, wantRemaining: "0"},
		{name: "over the limit", count: 6, wantCode: http.StatusTooManyRequests, wantRemaining: "0", wantRetryAfter: "60"},
		{name: "cache unavailable lets the request through", err: errors.New("dial tcp: connection refused"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			redisCache.EXPECT().Incr(gomock.Any(), key, 60).Return(tt.count, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/broadcasts/live", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			req.Header.Set("User-Agent", "screens-cli/1.0")

			rec := httptest.NewRecorder()
			limitedHandler(t, redisCache).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get(constant.ResponseHeaderRetryAfter))
		})
	}
}

func TestAppMiddleware_RateLimitDisabled(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newMiddleware(t *testing.T, cfg *config.Config) middleware.AppMiddleware {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	handler := chiMiddleware.RealIP(newMiddleware(t, cfg).RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/calculate", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		req.Header.Set(constant.RequestHeaderUserAgent, "channel-manager")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	first := call("203.0.113.7")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

	assert.Equal(t, http.StatusNoContent, call("203.0.113.7").Code)

	limited := call("203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get(constant.RequestHeaderRateLimitRemaining))

	// other clients keep their own budget
	assert.Equal(t, http.StatusNoContent, call("198.51.100.4").Code)
}

func TestRateLimit_SharedByActor(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := newMiddleware(t, cfg)
	handler := chiMiddleware.RealIP(mw.Actor(mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))))

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/approvals/apr-1/approve", nil)
		req.Header.Set("X-Forwarded-For", ip)
		req.Header.Set(constant.RequestHeaderActor, "revenue-manager")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call("203.0.113.7"))
	// same actor from another address draws on the same budget
	assert.Equal(t, http.StatusTooManyRequests, call("198.51.100.4"))
}

func TestRateLimit_CacheDown(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))
	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	mr.Close()

	for range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/pricing/calculate", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	handler := newMiddleware(t, &config.Config{}).RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for range 5 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/monitor/health", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	}
}

func TestActor(t *testing.T) {
	mw := newMiddleware(t, &config.Config{})

	tests := []struct {
		name   string
		header string
		want   any
	}{
		{name: "header present", header: "revenue-manager", want: "revenue-manager"},
		{name: "header absent", header: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got any

			handler := mw.Actor(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = r.Context().Value(constant.ContextKeyUserID)
			}))

			req := httptest.NewRequest(http.MethodPost, "/v1/pricing/approvals/apr-1/approve", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderActor, tt.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTracing_PassesStatusThrough(t *testing.T) {
	handler := newMiddleware(t, &config.Config{}).Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/monitor/health", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestTracing_EchoesRequestID(t *testing.T) {
	handler := chiMiddleware.RequestID(newMiddleware(t, &config.Config{}).Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "req-42")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestTracing_NoRequestID(t *testing.T) {
	handler := newMiddleware(t, &config.Config{}).Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

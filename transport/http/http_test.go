package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/shared/cache"
	"lodge/shared/constant"
	transport "lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newServer(t *testing.T, env string) *transport.HTTP {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Server.Env = env

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))

	return transport.New(cfg, router.New(router.DomainHandlers{}), mw, nil)
}

func get(server http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHealth(t *testing.T) {
	server := newServer(t, constant.ServerEnvDevelopment)

	rec := get(server, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OK")
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestSwagger(t *testing.T) {
	tests := []struct {
		env  string
		want int
	}{
		{env: constant.ServerEnvDevelopment, want: http.StatusOK},
		{env: constant.ServerEnvLocal, want: http.StatusOK},
		{env: constant.ServerEnvProduction, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, get(newServer(t, tt.env), "/swagger/doc.json").Code)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := get(newServer(t, constant.ServerEnvTest), "/v1/unknown")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

package redis_test

import (
	"context"
	"testing"

	"lodge/config"
	"lodge/infras/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(host, port string) *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = host
	cfg.Cache.Redis.Primary.Port = port

	return cfg
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "cache.internal:6379", redis.Addr(redisConfig("cache.internal", "6379")))
	assert.Equal(t, "[::1]:6379", redis.Addr(redisConfig("::1", "6379")))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.Connect(context.Background(), redisConfig(mr.Host(), mr.Port()))
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(context.Background(), "pricing:cache:room-1:2026-10-20", "750000", 0).Err())
	assert.True(t, mr.Exists("pricing:cache:room-1:2026-10-20"))
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := redisConfig(mr.Host(), mr.Port())
	mr.Close()

	client, err := redis.Connect(context.Background(), cfg)

	assert.Error(t, err)
	assert.Nil(t, client)
}

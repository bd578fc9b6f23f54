package redis

import (
	"context"
	"net"
	"time"

	"lodge/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	pingTimeout  = 5 * time.Second
	dialTimeout  = 5 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
)

// Addr joins the primary host and port, bracketing IPv6 hosts.
func Addr(config *config.Config) string {
	return net.JoinHostPort(config.Cache.Redis.Primary.Host, config.Cache.Redis.Primary.Port)
}

// Connect dials the primary and verifies it answers PING before returning the client.
func Connect(ctx context.Context, config *config.Config) (*goRedis.Client, error) {
	client := goRedis.NewClient(&goRedis.Options{
		Addr:         Addr(config),
		Password:     config.Cache.Redis.Primary.Password,
		DB:           config.Cache.Redis.Primary.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, err
	}

	return client, nil
}

func New(config *config.Config) *goRedis.Client {
	client, err := Connect(context.Background(), config)
	if err != nil {
		log.Fatal().Err(err).Str("addr", Addr(config)).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", config.Cache.Redis.Primary.DB).
		Str("addr", Addr(config)).
		Msg("Connected to Redis")

	return client
}

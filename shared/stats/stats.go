package stats

//go:generate go run go.uber.org/mock/mockgen -source=./stats.go -destination=./mocks/stats_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"lodge/infras/otel"
	"lodge/shared"
	"lodge/shared/constant"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName = "stats"

	keyPrefix       = "pricing:stats"
	bucketSize      = 10 * time.Second
	bucketRetention = 10 * time.Minute

	fieldCalculations = "calculations"
	fieldErrors       = "errors"
	fieldLatencyMs    = "latency_ms"
	fieldCacheHits    = "cache_hits"
	fieldCacheMisses  = "cache_misses"
)

// Snapshot aggregates the counters of every bucket inside a trailing window.
type Snapshot struct {
	Window       time.Duration
	Calculations int64
	Errors       int64
	LatencyMsSum float64
	CacheHits    int64
	CacheMisses  int64
}

func (s Snapshot) CalculationsPerSecond() float64 {
	if s.Window <= 0 {
		return 0
	}

	return float64(s.Calculations) / s.Window.Seconds()
}

func (s Snapshot) AvgCalculationMs() float64 {
	if s.Calculations == 0 {
		return 0
	}

	return s.LatencyMsSum / float64(s.Calculations)
}

// CacheHitRate is a percentage; an idle window counts as fully served from cache.
func (s Snapshot) CacheHitRate() float64 {
	lookups := s.CacheHits + s.CacheMisses
	if lookups == 0 {
		return constant.Percent
	}

	return float64(s.CacheHits) / float64(lookups) * constant.Percent
}

// ErrorRate is the percentage of attempted calculations that failed.
func (s Snapshot) ErrorRate() float64 {
	if s.Calculations == 0 {
		return 0
	}

	return float64(s.Errors) / float64(s.Calculations) * constant.Percent
}

type Recorder interface {
	RecordCalculation(ctx context.Context, duration time.Duration, failed bool)
	RecordCacheLookup(ctx context.Context, hit bool)
	Snapshot(ctx context.Context, window time.Duration) (Snapshot, error)
}

type redisRecorder struct {
	client *redis.Client
	otel   otel.Otel
	now    func() time.Time
}

func NewRedisRecorder(client *redis.Client, otel otel.Otel) Recorder {
	return &redisRecorder{
		client: client,
		otel:   otel,
		now:    time.Now,
	}
}

func bucketKey(at time.Time) string {
	return shared.BuildCacheKey(keyPrefix, strconv.FormatInt(at.Truncate(bucketSize).Unix(), 10))
}

// RecordCalculation never fails the caller; counter loss only skews monitoring.
func (r *redisRecorder) RecordCalculation(ctx context.Context, duration time.Duration, failed bool) {
	ctx, scope := r.otel.NewScope(ctx, otelScopeName, otelScopeName+".RecordCalculation")
	defer scope.End()

	key := bucketKey(r.now())

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, fieldCalculations, 1)
	pipe.HIncrByFloat(ctx, key, fieldLatencyMs, float64(duration.Microseconds())/1000)

	if failed {
		pipe.HIncrBy(ctx, key, fieldErrors, 1)
	}

	pipe.Expire(ctx, key, bucketRetention)

	if _, err := pipe.Exec(ctx); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("key", key).Msg("failed to record calculation stats")
	}
}

func (r *redisRecorder) RecordCacheLookup(ctx context.Context, hit bool) {
	ctx, scope := r.otel.NewScope(ctx, otelScopeName, otelScopeName+".RecordCacheLookup")
	defer scope.End()

	key := bucketKey(r.now())

	field := fieldCacheMisses
	if hit {
		field = fieldCacheHits
	}

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, field, 1)
	pipe.Expire(ctx, key, bucketRetention)

	if _, err := pipe.Exec(ctx); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("key", key).Msg("failed to record cache lookup stats")
	}
}

func (r *redisRecorder) Snapshot(ctx context.Context, window time.Duration) (snapshot Snapshot, err error) {
	ctx, scope := r.otel.NewScope(ctx, otelScopeName, otelScopeName+".Snapshot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	snapshot.Window = window

	now := r.now()
	buckets := max(1, int(window/bucketSize))

	pipe := r.client.Pipeline()
	commands := make([]*redis.MapStringStringCmd, 0, buckets)

	for i := range buckets {
		commands = append(commands, pipe.HGetAll(ctx, bucketKey(now.Add(-time.Duration(i)*bucketSize))))
	}

	if _, err = pipe.Exec(ctx); err != nil && err != redis.Nil {
		return snapshot, fmt.Errorf("failed to read stats buckets: %w", err)
	}

	for _, cmd := range commands {
		values := cmd.Val()

		snapshot.Calculations += parseInt(values[fieldCalculations])
		snapshot.Errors += parseInt(values[fieldErrors])
		snapshot.CacheHits += parseInt(values[fieldCacheHits])
		snapshot.CacheMisses += parseInt(values[fieldCacheMisses])
		snapshot.LatencyMsSum += parseFloat(values[fieldLatencyMs])
	}

	return snapshot, nil
}

func parseInt(value string) int64 {
	parsed, _ := strconv.ParseInt(value, 10, 64)

	return parsed
}

func parseFloat(value string) float64 {
	parsed, _ := strconv.ParseFloat(value, 64)

	return parsed
}

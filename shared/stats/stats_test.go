package stats

import (
	"context"
	"testing"
	"time"

	"lodge/infras/otel/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(t *testing.T, now time.Time) (*redisRecorder, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	recorder := NewRedisRecorder(client, mocks.NewOtel()).(*redisRecorder)
	recorder.now = func() time.Time { return now }

	return recorder, mr
}

func TestRedisRecorder_SnapshotAggregatesWindow(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 0, 5, 0, time.UTC)
	recorder, _ := newTestRecorder(t, now)
	ctx := context.Background()

	recorder.RecordCalculation(ctx, 100*time.Millisecond, false)
	recorder.RecordCalculation(ctx, 300*time.Millisecond, true)
	recorder.RecordCacheLookup(ctx, true)
	recorder.RecordCacheLookup(ctx, true)
	recorder.RecordCacheLookup(ctx, true)
	recorder.RecordCacheLookup(ctx, false)

	// an older bucket still inside the window
	recorder.now = func() time.Time { return now.Add(-30 * time.Second) }
	recorder.RecordCalculation(ctx, 200*time.Millisecond, false)

	recorder.now = func() time.Time { return now }

	snapshot, err := recorder.Snapshot(ctx, time.Minute)
	require.NoError(t, err)

	assert.Equal(t, int64(3), snapshot.Calculations)
	assert.Equal(t, int64(1), snapshot.Errors)
	assert.InDelta(t, 600.0, snapshot.LatencyMsSum, 0.001)
	assert.InDelta(t, 200.0, snapshot.AvgCalculationMs(), 0.001)
	assert.InDelta(t, 0.05, snapshot.CalculationsPerSecond(), 0.0001)
	assert.InDelta(t, 75.0, snapshot.CacheHitRate(), 0.001)
	assert.InDelta(t, 33.333, snapshot.ErrorRate(), 0.001)
}

func TestRedisRecorder_SnapshotIgnoresBucketsOutsideWindow(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 0, 5, 0, time.UTC)
	recorder, _ := newTestRecorder(t, now)
	ctx := context.Background()

	recorder.now = func() time.Time { return now.Add(-2 * time.Minute) }
	recorder.RecordCalculation(ctx, time.Second, true)

	recorder.now = func() time.Time { return now }

	snapshot, err := recorder.Snapshot(ctx, time.Minute)
	require.NoError(t, err)

	assert.Zero(t, snapshot.Calculations)
	assert.Zero(t, snapshot.Errors)
}

func TestRedisRecorder_BucketsExpire(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 0, 5, 0, time.UTC)
	recorder, mr := newTestRecorder(t, now)

	recorder.RecordCacheLookup(context.Background(), false)

	key := bucketKey(now)
	require.True(t, mr.Exists(key))

	mr.FastForward(bucketRetention + time.Second)

	assert.False(t, mr.Exists(key))
}

func TestSnapshot_IdleWindow(t *testing.T) {
	snapshot := Snapshot{Window: time.Minute}

	assert.Zero(t, snapshot.CalculationsPerSecond())
	assert.Zero(t, snapshot.AvgCalculationMs())
	assert.Zero(t, snapshot.ErrorRate())
	assert.Equal(t, 100.0, snapshot.CacheHitRate())
}

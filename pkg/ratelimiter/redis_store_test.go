package ratelimiter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluid/pkg/ratelimiter"
)

func liveRedis(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("FLUID_TEST_REDIS_URL")
	if url == "" {
		t.Skip("FLUID_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore_MatchesMemoryStore(t *testing.T) {
	client := liveRedis(t)
	clk := newClock()
	cfg := ratelimiter.Config{Capacity: 10, RefillRate: 2, RefillInterval: time.Second}

	redisBucket, err := ratelimiter.NewBucket(
		ratelimiter.NewRedisStore(client,
			ratelimiter.WithKeyPrefix("fluid:test:"+uuid.NewString()+":"),
			ratelimiter.WithRedisClock(clk.Now),
		), cfg)
	require.NoError(t, err)
	memBucket, _ := newBucket(t, clk, cfg)

	ctx := context.Background()
	steps := []struct {
		advance time.Duration
		n       int
	}{
		{0, 4}, {0, 7}, {1500 * time.Millisecond, 7}, {0, 2}, {time.Hour, 1},
	}
	for i, step := range steps {
		clk.Advance(step.advance)
		want, err := memBucket.AllowN(ctx, "k", step.n)
		require.NoError(t, err)
		got, err := redisBucket.AllowN(ctx, "k", step.n)
		require.NoError(t, err)
		assert.Equal(t, want.Allowed, got.Allowed, "step %d", i)
		assert.Equal(t, want.Remaining, got.Remaining, "step %d", i)
		assert.Equal(t, want.Limit, got.Limit, "step %d", i)
		assert.True(t, want.ResetAt.Equal(got.ResetAt), "step %d: %v != %v", i, want.ResetAt, got.ResetAt)
	}

	require.NoError(t, redisBucket.Reset(ctx, "k"))
	res, err := redisBucket.AllowN(ctx, "k", 10)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisStore_Unreachable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	b, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), ratelimiter.Config{
		Capacity: 1, RefillRate: 1, RefillInterval: time.Second,
	})
	require.NoError(t, err)

	_, err = b.Allow(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis take")
}

package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluid/pkg/redis"
)

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{URL: "http://nope", ConnectTimeout: time.Second})
	require.ErrorIs(t, err, redis.ErrInvalidURL)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, err := redis.Connect(context.Background(), redis.Config{
		URL:            "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	require.ErrorIs(t, err, redis.ErrNotReady)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	err := redis.Healthcheck(client)(context.Background())
	require.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}

func TestConnect_Live(t *testing.T) {
	url := os.Getenv("FLUID_TEST_REDIS_URL")
	if url == "" {
		t.Skip("FLUID_TEST_REDIS_URL not set")
	}

	client, err := redis.Connect(context.Background(), redis.Config{
		URL:            url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, redis.Healthcheck(client)(context.Background()))
}

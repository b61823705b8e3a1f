package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "fluid:ratelimit:"

// takeScript mirrors MemoryStore.Take atomically. Times are unix millis.
// The key expires when the bucket would be full again.
var takeScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local n = tonumber(ARGV[4])
local now = tonumber(ARGV[5])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'last')
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil or last == nil then
  tokens = capacity
  last = now
end

local intervals = math.floor((now - last) / interval)
if intervals > 0 then
  local capped = math.min(intervals, math.floor(capacity / rate) + 1)
  tokens = math.min(tokens + capped * rate, capacity)
  last = last + intervals * interval
end

local allowed = 0
if tokens >= n then
  tokens = tokens - n
  allowed = 1
end

local ttl = last + math.ceil((capacity - tokens) / rate) * interval - now
if ttl > 0 then
  redis.call('HSET', KEYS[1], 'tokens', tokens, 'last', last)
  redis.call('PEXPIRE', KEYS[1], ttl)
else
  redis.call('DEL', KEYS[1])
end
return {allowed, tokens, last}
`)

// RedisStore shares buckets between processes.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix replaces the "fluid:ratelimit:" key prefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) { rs.prefix = prefix }
}

// WithRedisClock replaces time.Now.
func WithRedisClock(now func() time.Time) RedisStoreOption {
	return func(rs *RedisStore) {
		if now != nil {
			rs.now = now
		}
	}
}

// NewRedisStore returns a store backed by client, which may be a single
// node, cluster or ring client.
func NewRedisStore(client redis.Cmdable, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{client: client, prefix: defaultKeyPrefix, now: time.Now}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) Take(ctx context.Context, key string, n int, cfg Config) (Result, error) {
	interval := cfg.RefillInterval.Milliseconds()
	if interval <= 0 {
		return Result{}, fmt.Errorf("%w: refill interval must be at least 1ms for redis", ErrInvalidConfig)
	}

	vals, err := takeScript.Run(ctx, rs.client, []string{rs.prefix + key},
		cfg.Capacity, cfg.RefillRate, interval, n, rs.now().UnixMilli(),
	).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimiter: redis take: %w", err)
	}
	if len(vals) != 3 {
		return Result{}, fmt.Errorf("ratelimiter: redis take: unexpected reply length %d", len(vals))
	}

	allowed, tokens := vals[0] == 1, int(vals[1])
	last := time.UnixMilli(vals[2])
	res := Result{Allowed: allowed, Limit: cfg.Capacity, Remaining: tokens}
	if allowed {
		res.ResetAt = last.Add(cfg.RefillInterval)
	} else {
		intervals := (n - tokens + cfg.RefillRate - 1) / cfg.RefillRate
		res.ResetAt = last.Add(time.Duration(intervals) * cfg.RefillInterval)
	}
	return res, nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return fmt.Errorf("ratelimiter: redis reset: %w", err)
	}
	return nil
}

package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config describes one token bucket. It loads from the environment under a
// caller-chosen prefix (the CLI uses "FLUID_RATE_").
type Config struct {
	Capacity       int           `env:"CAPACITY" envDefault:"1000"`
	RefillRate     int           `env:"REFILL_RATE" envDefault:"100"`
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"1s"`
}

// Validate reports whether every field is positive.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of one check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is the next refill when allowed, and the moment enough
	// tokens will be available when denied.
	ResetAt time.Time
}

// RetryAfter is zero for allowed results.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

// Store keeps bucket state per key.
type Store interface {
	// Take removes n tokens from key's bucket if it holds at least n.
	// A denied take leaves the bucket unchanged.
	Take(ctx context.Context, key string, n int, cfg Config) (Result, error)
	Reset(ctx context.Context, key string) error
}

// Bucket applies one Config to many keys.
type Bucket struct {
	store  Store
	config Config
}

// NewBucket validates cfg and binds it to store.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: cfg}, nil
}

// Config returns the bucket's configuration.
func (b *Bucket) Config() Config { return b.config }

// Allow takes one token.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens at once; it is all or nothing.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if n > b.config.Capacity {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrExceedsCapacity, n, b.config.Capacity)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return b.store.Take(ctx, key, n, b.config)
}

// Reset forgets key, giving it a full bucket.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

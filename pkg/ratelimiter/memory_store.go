package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type bucketState struct {
	tokens     int
	lastRefill time.Time
	// fullAt is when the bucket refills completely; past it the state is
	// indistinguishable from a fresh bucket and can be dropped.
	fullAt time.Time
}

// MemoryStore keeps buckets in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
	now     func() time.Time

	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
	done            chan struct{}
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often refilled buckets are dropped. Zero
// disables the background sweep.
func WithCleanupInterval(d time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) { ms.cleanupInterval = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore returns a store. Call Close to stop the sweep goroutine.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:         make(map[string]*bucketState),
		now:             time.Now,
		cleanupInterval: time.Minute,
		stop:            make(chan struct{}),
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.sweep()
	} else {
		close(ms.done)
	}
	return ms
}

func (ms *MemoryStore) Take(ctx context.Context, key string, n int, cfg Config) (Result, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	b, ok := ms.buckets[key]
	if !ok {
		b = &bucketState{tokens: cfg.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}

	// Whole intervals only; the partial one carries over via lastRefill.
	if intervals := int64(now.Sub(b.lastRefill) / cfg.RefillInterval); intervals > 0 {
		capped := min(intervals, int64(cfg.Capacity/cfg.RefillRate+1))
		b.tokens = min(b.tokens+int(capped)*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
	}

	res := Result{Limit: cfg.Capacity}
	if b.tokens >= n {
		b.tokens -= n
		res.Allowed = true
		res.ResetAt = b.lastRefill.Add(cfg.RefillInterval)
	} else {
		missing := n - b.tokens
		intervals := (missing + cfg.RefillRate - 1) / cfg.RefillRate
		res.ResetAt = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
	}
	res.Remaining = b.tokens

	missing := cfg.Capacity - b.tokens
	b.fullAt = b.lastRefill.Add(time.Duration((missing+cfg.RefillRate-1)/cfg.RefillRate) * cfg.RefillInterval)
	return res, nil
}

func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.buckets, key)
	return nil
}

// Len reports how many keys are tracked.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.buckets)
}

// Sweep drops every bucket that has refilled completely.
func (ms *MemoryStore) Sweep() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, b := range ms.buckets {
		if !now.Before(b.fullAt) {
			delete(ms.buckets, key)
		}
	}
}

func (ms *MemoryStore) sweep() {
	defer close(ms.done)
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.Sweep()
		case <-ms.stop:
			return
		}
	}
}

// Close stops the sweep goroutine and waits for it. Safe to call twice.
func (ms *MemoryStore) Close() error {
	ms.stopOnce.Do(func() { close(ms.stop) })
	<-ms.done
	return nil
}

// Package ratelimiter implements a token bucket keyed by an arbitrary string.
//
// The fluid API charges one token per generated fluid, so a request for
// count=50 takes 50 tokens at once or is rejected without taking any:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       1000,
//		RefillRate:     100,
//		RefillInterval: time.Second,
//	})
//	res, err := bucket.AllowN(ctx, clientIP, count)
//	if !res.Allowed {
//		// 429 with Retry-After: res.RetryAfter(time.Now())
//	}
//
// Tokens are added in whole intervals. Idle buckets that have refilled are
// swept periodically since they carry no state a fresh bucket would not.
package ratelimiter

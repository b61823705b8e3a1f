package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid rate limit configuration")
	ErrInvalidTokenCount = errors.New("invalid token count")
	// ErrExceedsCapacity means the request asks for more tokens than the
	// bucket can ever hold, so waiting will not help.
	ErrExceedsCapacity = errors.New("token count exceeds bucket capacity")
)

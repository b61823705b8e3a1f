package api

import (
	"net/http"

	"github.com/dmitrymomot/fluid/handler"
)

var (
	ErrInvalidCount   = handler.HTTPError{Status: http.StatusBadRequest, Key: "invalid_count", Message: "count must be an integer between 1 and 1000"}
	ErrCountOverQuota = handler.HTTPError{Status: http.StatusBadRequest, Key: "invalid_count", Message: "count exceeds the per-client quota"}
	ErrInvalidUUID    = handler.HTTPError{Status: http.StatusBadRequest, Key: "invalid_uuid", Message: "id must be a random (version 4) UUID"}
	ErrRateLimited    = handler.HTTPError{Status: http.StatusTooManyRequests, Key: "rate_limited", Message: "fluid quota exhausted, retry later"}
)

package api

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fluid/handler"
	"github.com/dmitrymomot/fluid/pkg/clientip"
	"github.com/dmitrymomot/fluid/pkg/fluid"
	"github.com/dmitrymomot/fluid/pkg/logger"
	"github.com/dmitrymomot/fluid/pkg/ratelimiter"
)

// Item is one rendered fluid.
type Item struct {
	ID   string    `json:"id"`
	UUID uuid.UUID `json:"uuid"`
}

// DictionaryInfo describes the served dictionary. Combinations is a decimal
// string because it can exceed 2^53.
type DictionaryInfo struct {
	Adjectives   int    `json:"adjectives"`
	Adverbs      int    `json:"adverbs"`
	Verbs        int    `json:"verbs"`
	Nouns        int    `json:"nouns"`
	Combinations string `json:"combinations"`
}

type generateRequest struct {
	Count *int `query:"count"`
}

// count applies the default and the 1..maxCount bound.
func (req generateRequest) count() (int, error) {
	if req.Count == nil {
		return defaultCount, nil
	}
	if n := *req.Count; n >= 1 && n <= maxCount {
		return n, nil
	}
	return 0, ErrInvalidCount
}

type renderRequest struct {
	ID uuid.UUID `path:"id"`
}

func (s *Server) handleGenerate(ctx handler.Context, req generateRequest) handler.Response {
	count, err := req.count()
	if err != nil {
		return handler.Error(err)
	}

	items := make([]Item, 0, count)
	for range count {
		f, err := s.next()
		if err != nil {
			return handler.Error(err)
		}
		items = append(items, s.item(f))
	}
	return handler.JSON(items, handler.WithJSONMeta(map[string]any{"count": count}))
}

func (s *Server) handleRender(ctx handler.Context, req renderRequest) handler.Response {
	f, err := fluid.FromUUID(req.ID)
	if err != nil {
		return handler.Error(ErrInvalidUUID)
	}
	return handler.JSON(s.item(f))
}

func (s *Server) handleDictionary(ctx handler.Context, _ struct{}) handler.Response {
	stats := s.dict.Stats()
	combinations := stats.Combinations
	if combinations == nil {
		combinations = new(big.Int)
	}
	return handler.JSON(DictionaryInfo{
		Adjectives:   stats.Adjectives,
		Adverbs:      stats.Adverbs,
		Verbs:        stats.Verbs,
		Nouns:        stats.Nouns,
		Combinations: combinations.String(),
	})
}

// handleHealth answers ALIVE when checks is empty, otherwise READY if every
// check passes and NOT_READY with a 503 if any fails.
func (s *Server) handleHealth(checks []func(context.Context) error) handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		if len(checks) == 0 {
			return handler.Text(http.StatusOK, "ALIVE")
		}
		for _, check := range checks {
			if err := check(ctx); err != nil {
				s.log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return handler.Text(http.StatusServiceUnavailable, "NOT_READY")
			}
		}
		return handler.Text(http.StatusOK, "READY")
	}
}

// chargeQuota takes one token per requested fluid from the client's quota
// and sets the X-RateLimit-* headers. A count larger than the bucket can
// ever hold is a client error, not a rate limit.
func (s *Server) chargeQuota(next handler.HandlerFunc[handler.Context, generateRequest]) handler.HandlerFunc[handler.Context, generateRequest] {
	return func(ctx handler.Context, req generateRequest) handler.Response {
		if s.limiter == nil {
			return next(ctx, req)
		}
		count, err := req.count()
		if err != nil {
			return handler.Error(err)
		}

		res, err := s.limiter.AllowN(ctx, clientip.FromContext(ctx), count)
		if errors.Is(err, ratelimiter.ErrExceedsCapacity) {
			return handler.Error(ErrCountOverQuota)
		}
		if err != nil {
			return handler.Error(err)
		}

		h := ctx.ResponseWriter().Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
		if res.Allowed {
			return next(ctx, req)
		}

		retry := res.RetryAfter(time.Now())
		h.Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
		s.log.InfoContext(ctx, "rate limited",
			slog.String("client_ip", clientip.FromContext(ctx)),
			logger.Count(count),
		)
		return handler.Error(ErrRateLimited)
	}
}

func (s *Server) item(f fluid.Fluid) Item {
	return Item{ID: f.Format(s.dict), UUID: f.UUID()}
}

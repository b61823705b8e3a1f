package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fluid/pkg/logger"
)

type errorMapping struct {
	target error
	to     HTTPError
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

type errorHandlerConfig struct {
	mappings []errorMapping
}

// WithErrorMapping renders any error matching target (errors.Is) as to.
// Mappings are checked in order before HTTPError values in the chain.
func WithErrorMapping(target error, to HTTPError) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		c.mappings = append(c.mappings, errorMapping{target: target, to: to})
	}
}

// Classify returns the HTTPError found in err's chain, or ErrInternal.
func Classify(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternal
}

func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler renders errors as JSON envelopes and logs them, 4xx at
// warn and everything else at error. Unknown errors become a 500 whose
// message does not leak err. Records are logged with the request context,
// so request_id comes from log's context extractors.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	cfg := &errorHandlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx Context, err error) {
		info, mapped := HTTPError{}, false
		for _, m := range cfg.mappings {
			if errors.Is(err, m.target) {
				info, mapped = m.to, true
				break
			}
		}
		if !mapped {
			info = Classify(err)
		}

		r := ctx.Request()
		log.LogAttrs(r.Context(), logLevel(info.Status), "request error",
			logger.Error(err),
			slog.Int("status", info.Status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(info).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

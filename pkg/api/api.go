package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fluid/binder"
	"github.com/dmitrymomot/fluid/handler"
	"github.com/dmitrymomot/fluid/pkg/clientip"
	"github.com/dmitrymomot/fluid/pkg/dictionary"
	"github.com/dmitrymomot/fluid/pkg/environment"
	"github.com/dmitrymomot/fluid/pkg/fluid"
	"github.com/dmitrymomot/fluid/pkg/logger"
	"github.com/dmitrymomot/fluid/pkg/ratelimiter"
	"github.com/dmitrymomot/fluid/pkg/requestid"
)

const (
	defaultCount = 1
	maxCount     = 1000
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEnvironment tags request contexts with env.
func WithEnvironment(env environment.Environment) Option {
	return func(s *Server) { s.env = env }
}

// WithSource replaces fluid.New as the generator, e.g. with a seeded reader
// wrapped by fluid.NewFromReader.
func WithSource(next func() (fluid.Fluid, error)) Option {
	return func(s *Server) {
		if next != nil {
			s.next = next
		}
	}
}

// WithReadinessCheck adds a check to /health/ready.
func WithReadinessCheck(check func(context.Context) error) Option {
	return func(s *Server) {
		if check != nil {
			s.checks = append(s.checks, check)
		}
	}
}

// Limiter charges a key for n fluids. *ratelimiter.Bucket implements it.
type Limiter interface {
	AllowN(ctx context.Context, key string, n int) (ratelimiter.Result, error)
}

// WithLimiter charges each client one token per generated fluid, keyed by
// client address. Without it generation is unlimited.
func WithLimiter(l Limiter) Option {
	return func(s *Server) { s.limiter = l }
}

// WithTrustedHeaders names the proxy headers that carry the client address.
// By default only the connection's remote address is used.
func WithTrustedHeaders(headers ...string) Option {
	return func(s *Server) { s.trustedHeaders = headers }
}

// Server serves fluids rendered against one dictionary.
type Server struct {
	dict   *dictionary.Dictionary
	log    *slog.Logger
	env    environment.Environment
	next   func() (fluid.Fluid, error)
	checks []func(context.Context) error

	limiter        Limiter
	trustedHeaders []string

	errors handler.ErrorHandler[handler.Context]
}

// New returns a Server rendering against d.
func New(d *dictionary.Dictionary, opts ...Option) *Server {
	s := &Server{
		dict: d,
		log:  logger.Nop(),
		env:  environment.Development,
		next: func() (fluid.Fluid, error) { return fluid.New(), nil },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.errors = handler.NewErrorHandler(s.log,
		handler.WithErrorMapping(binder.ErrInvalidQuery, ErrInvalidCount),
		handler.WithErrorMapping(binder.ErrInvalidPath, ErrInvalidUUID),
	)
	s.log = s.log.With(logger.Component("api"))
	return s
}

// Routes returns the HTTP handler:
//
//	GET /fluids            ?count=N, 1 <= N <= 1000
//	GET /fluids/{uuid}     render an existing version 4 UUID
//	GET /dictionary        list sizes and combination count
//	GET /health/live
//	GET /health/ready
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware(s.requestID))
	r.Use(clientip.Middleware(s.trustedHeaders...))
	r.Use(environment.Middleware(s.env))
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.NotFound(wrap(s, func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}))
	r.MethodNotAllowed(wrap(s, func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrMethodNotAllowed)
	}))

	r.Route("/fluids", func(r chi.Router) {
		r.Get("/", wrap(s, s.handleGenerate,
			handler.WithBinder[handler.Context, generateRequest](binder.BindQuery()),
			handler.WithDecorators[handler.Context, generateRequest](s.chargeQuota),
		))
		r.Get("/{id}", wrap(s, s.handleRender,
			handler.WithBinder[handler.Context, renderRequest](binder.Path(chi.URLParam)),
		))
	})
	r.Get("/dictionary", wrap(s, s.handleDictionary))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", wrap(s, s.handleHealth(nil)))
		r.Get("/ready", wrap(s, s.handleHealth(append([]func(context.Context) error{s.dictionaryReady}, s.checks...))))
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.log.DebugContext(r.Context(), "request",
			slog.String("client_ip", clientip.FromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

// wrap adapts h with the server's JSON error handler.
func wrap[R any](s *Server, h handler.HandlerFunc[handler.Context, R], opts ...handler.WrapOption[handler.Context, R]) http.HandlerFunc {
	opts = append([]handler.WrapOption[handler.Context, R]{handler.WithErrorHandler[handler.Context, R](s.errors)}, opts...)
	return handler.Wrap(h, opts...)
}

// requestID names requests with a fluid from the served dictionary.
func (s *Server) requestID() string {
	return fluid.New().Format(s.dict)
}

func (s *Server) dictionaryReady(context.Context) error {
	return s.dict.Validate()
}

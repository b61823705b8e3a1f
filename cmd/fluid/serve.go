package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fluid/pkg/api"
	"github.com/dmitrymomot/fluid/pkg/config"
	"github.com/dmitrymomot/fluid/pkg/httpserver"
	"github.com/dmitrymomot/fluid/pkg/logger"
	"github.com/dmitrymomot/fluid/pkg/ratelimiter"
	"github.com/dmitrymomot/fluid/pkg/redis"
)

// serveConfig is loaded with the "FLUID_" prefix.
type serveConfig struct {
	// TrustedHeaders lists proxy headers carrying the client address,
	// e.g. "CF-Connecting-IP,X-Forwarded-For". Empty trusts RemoteAddr only.
	TrustedHeaders []string `env:"TRUSTED_HEADERS"`

	RateLimit bool `env:"RATE_LIMIT" envDefault:"true"`

	// RateStore is "memory" for a per-process quota or "redis" to share
	// it between replicas.
	RateStore string             `env:"RATE_STORE" envDefault:"memory"`
	Rate      ratelimiter.Config `envPrefix:"RATE_"`
	Redis     redis.Config       `envPrefix:"REDIS_"`
}

func (c *cli) serveCmd() *cobra.Command {
	var (
		addr     string
		dictPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve fluids over HTTP",
		Long: `Starts the HTTP API. Listener settings come from HTTP_* variables
(HTTP_ADDR, HTTP_READ_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT, ...); --addr overrides
HTTP_ADDR. Stops gracefully on SIGINT or SIGTERM.

GET /fluids is limited per client to FLUID_RATE_CAPACITY fluids, refilled by
FLUID_RATE_REFILL_RATE every FLUID_RATE_REFILL_INTERVAL. FLUID_RATE_LIMIT=false
turns the quota off. FLUID_RATE_STORE=redis shares the quota between
replicas through FLUID_REDIS_URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srvCfg, err := config.Load[httpserver.Config](c.configOptions("HTTP_")...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				srvCfg.Addr = addr
			}
			cfg, err := config.Load[serveConfig](c.configOptions("FLUID_")...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, err := c.loadDictionary(ctx, dictPath)
			if err != nil {
				return err
			}
			c.log.InfoContext(ctx, "serving fluids", logger.Combinations(d.UniqueCombinations()))

			opts := []api.Option{
				api.WithLogger(c.log),
				api.WithEnvironment(c.env),
				api.WithTrustedHeaders(cfg.TrustedHeaders...),
			}
			if cfg.RateLimit {
				limitOpts, closeStore, err := c.rateLimitOptions(ctx, cfg)
				if err != nil {
					return err
				}
				defer closeStore()
				opts = append(opts, limitOpts...)
			}

			router := api.New(d, opts...).Routes()
			return httpserver.New(srvCfg, c.log).Run(ctx, router)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dictPath, "dict", "", "compiled dictionary to use instead of the embedded one")
	return cmd
}

// rateLimitOptions builds the per-client quota. The returned func releases
// the store.
func (c *cli) rateLimitOptions(ctx context.Context, cfg serveConfig) ([]api.Option, func(), error) {
	if err := cfg.Rate.Validate(); err != nil {
		return nil, nil, err
	}

	switch cfg.RateStore {
	case "memory":
		store := ratelimiter.NewMemoryStore()
		bucket, err := ratelimiter.NewBucket(store, cfg.Rate)
		if err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return []api.Option{api.WithLimiter(bucket)}, func() { _ = store.Close() }, nil

	case "redis":
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		bucket, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), cfg.Rate)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		c.log.InfoContext(ctx, "rate limit store connected", slog.String("store", "redis"))
		return []api.Option{
			api.WithLimiter(bucket),
			api.WithReadinessCheck(redis.Healthcheck(client)),
		}, func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("invalid FLUID_RATE_STORE %q: must be \"memory\" or \"redis\"", cfg.RateStore)
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fluid/pkg/config"
	"github.com/dmitrymomot/fluid/pkg/dictionary"
	"github.com/dmitrymomot/fluid/pkg/environment"
	"github.com/dmitrymomot/fluid/pkg/fluid"
	"github.com/dmitrymomot/fluid/pkg/logger"
	"github.com/dmitrymomot/fluid/pkg/requestid"
	"github.com/dmitrymomot/fluid/pkg/storage"
)

const serviceName = "fluid"

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// cli carries what every command needs. environ, when set, replaces the
// process environment as the configuration source.
type cli struct {
	stdout  io.Writer
	stderr  io.Writer
	environ map[string]string

	env environment.Environment
	log *slog.Logger
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{stdout: stdout, stderr: stderr, log: logger.New(logger.WithOutput(stderr))}
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, c *cli) int {
	root := c.rootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		c.log.ErrorContext(ctx, "command failed", logger.Error(err))
		return 1
	}
	return 0
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fluid",
		Short:         "Four-word identifiers from a compiled dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.AddCommand(
		c.buildCmd(),
		c.generateCmd(),
		c.statsCmd(),
		c.serveCmd(),
	)
	return root
}

// setup replaces the bootstrap logger with one configured from APP_ENV,
// LOG_LEVEL and LOG_FORMAT.
func (c *cli) setup() error {
	app, err := config.Load[appConfig](c.configOptions("")...)
	if err != nil {
		return err
	}
	c.env = environment.Parse(app.Env)

	opts := []logger.Option{
		logger.WithOutput(c.stderr),
		logger.WithEnvironment(c.env, serviceName),
		logger.WithContextExtractors(environment.LoggerExtractor(), requestid.LoggerExtractor()),
	}
	if app.LogLevel != "" {
		level, err := logger.ParseLevel(app.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch f := logger.Format(app.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", f, logger.FormatJSON, logger.FormatText)
	}

	c.log = logger.New(opts...)
	return nil
}

func (c *cli) configOptions(prefix string) []config.Option {
	opts := []config.Option{config.WithPrefix(prefix)}
	if c.environ != nil {
		opts = append(opts, config.WithEnviron(c.environ))
	}
	return opts
}

// loadDictionary returns the embedded dictionary, or decodes the compiled
// resource at path from the configured storage.
func (c *cli) loadDictionary(ctx context.Context, path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return fluid.LoadDictionary()
	}

	storeCfg, err := config.Load[storage.Config](c.configOptions("FLUID_STORAGE_")...)
	if err != nil {
		return nil, err
	}
	store, err := storage.New(ctx, storeCfg)
	if err != nil {
		return nil, err
	}
	data, err := store.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	d, err := dictionary.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode dictionary %s: %w", path, err)
	}
	c.log.DebugContext(ctx, "dictionary loaded", logger.Path(path), logger.Combinations(d.UniqueCombinations()))
	return d, nil
}

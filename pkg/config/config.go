package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

var (
	ErrParsingConfig  = errors.New("failed to parse environment variables into config")
	ErrLoadingEnvFile = errors.New("failed to load env file")
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	files    []string
	explicit bool
	environ  map[string]string
}

// WithPrefix prepends p to every env tag of the target struct.
func WithPrefix(p string) Option {
	return func(o *options) { o.prefix = p }
}

// WithEnvFiles reads variables from the given dotenv files instead of the
// default .env. Unlike the default file, these must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = files
		o.explicit = true
	}
}

// WithEnviron replaces the process environment as the variable source.
func WithEnviron(vars map[string]string) Option {
	return func(o *options) { o.environ = vars }
}

// Load parses environment variables into a new T using its `env` struct tags.
// Values already present in the environment take precedence over values
// from dotenv files.
//
//	type ServerConfig struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[ServerConfig](config.WithPrefix("HTTP_"))
func Load[T any](opts ...Option) (T, error) {
	o := &options{files: []string{defaultEnvFile}}
	for _, opt := range opts {
		opt(o)
	}

	vars := o.environ
	if vars == nil {
		vars = environMap(os.Environ())
	}

	merged, err := mergeEnvFiles(vars, o.files, o.explicit)
	if err != nil {
		var zero T
		return zero, err
	}

	var cfg T
	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: merged,
		Prefix:      o.prefix,
	}); err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func mergeEnvFiles(vars map[string]string, files []string, required bool) (map[string]string, error) {
	merged := make(map[string]string, len(vars))
	for _, name := range files {
		fileVars, err := godotenv.Read(name)
		if err != nil {
			if !required && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, name, err)
		}
		for k, v := range fileVars {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	for k, v := range vars {
		merged[k] = v
	}
	return merged, nil
}

func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

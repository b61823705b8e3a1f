package storage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage reads and writes whole files by slash-separated relative path.
type Storage interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
	Exists(ctx context.Context, path string) (bool, error)
}

// Driver names a Storage backend.
type Driver string

const (
	DriverLocal Driver = "local"
	DriverS3    Driver = "s3"
)

// Config selects and configures a backend. The CLI loads it with the
// "FLUID_STORAGE_" prefix.
type Config struct {
	Driver  Driver   `env:"DRIVER" envDefault:"local"`
	BaseDir string   `env:"BASE_DIR" envDefault:"."`
	S3      S3Config `envPrefix:"S3_"`
}

// New returns the backend cfg.Driver names. For S3 it bounds each HTTP
// request by cfg.S3.Timeout and the SDK's retries by cfg.S3.MaxAttempts;
// opts are applied after those and may override them. S3 options are
// ignored by the local driver.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocalStorage(cfg.BaseDir)
	case DriverS3:
		defaults := []S3Option{WithHTTPClient(&http.Client{Timeout: cfg.S3.Timeout})}
		if n := cfg.S3.MaxAttempts; n > 0 {
			defaults = append(defaults, WithS3ClientOption(func(o *s3.Options) { o.RetryMaxAttempts = n }))
		}
		return NewS3Storage(ctx, cfg.S3, append(defaults, opts...)...)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}

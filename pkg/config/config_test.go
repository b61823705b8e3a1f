package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluid/pkg/config"
)

type testConfig struct {
	Name    string        `env:"NAME" envDefault:"fluid"`
	Count   int           `env:"COUNT" envDefault:"1"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Tags    []string      `env:"TAGS" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"TOKEN,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[testConfig](config.WithEnviron(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, "fluid", cfg.Name)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Tags)
}

func TestLoad_Environment(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[testConfig](config.WithEnviron(map[string]string{
		"NAME":    "custom",
		"COUNT":   "42",
		"TIMEOUT": "1m",
		"TAGS":    "a,b,c",
	}))
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
}

func TestLoad_Prefix(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[testConfig](
		config.WithPrefix("APP_"),
		config.WithEnviron(map[string]string{"APP_NAME": "prefixed", "NAME": "ignored"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.Name)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Parallel()

	first := writeEnvFile(t, "NAME=from-file\nCOUNT=7\n")
	second := writeEnvFile(t, "NAME=second\nTAGS=x,y\n")

	cfg, err := config.Load[testConfig](
		config.WithEnvFiles(first, second),
		config.WithEnviron(map[string]string{"COUNT": "9"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Name, "first file wins")
	assert.Equal(t, 9, cfg.Count, "environment wins over files")
	assert.Equal(t, []string{"x", "y"}, cfg.Tags)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load[testConfig](
		config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")),
		config.WithEnviron(map[string]string{}),
	)
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_ParseErrors(t *testing.T) {
	t.Parallel()

	_, err := config.Load[testConfig](config.WithEnviron(map[string]string{"COUNT": "many"}))
	require.ErrorIs(t, err, config.ErrParsingConfig)

	_, err = config.Load[requiredConfig](config.WithEnviron(map[string]string{}))
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](config.WithEnviron(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		cfg := config.MustLoad[requiredConfig](config.WithEnviron(map[string]string{"TOKEN": "t"}))
		assert.Equal(t, "t", cfg.Token)
	})
}

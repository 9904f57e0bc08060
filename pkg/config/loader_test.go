package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekit/pkg/config"
)

type testConfig struct {
	Interval time.Duration `env:"TEST_POLL_INTERVAL" envDefault:"500ms"`
	Timeout  time.Duration `env:"TEST_WAIT_TIMEOUT" envDefault:"0"`
	Name     string        `env:"TEST_GATE_NAME" envDefault:"default-gate"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 500*time.Millisecond, cfg.Interval)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, "default-gate", cfg.Name)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_POLL_INTERVAL", "2s")
	t.Setenv("TEST_GATE_NAME", "db-ready")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, "db-ready", cfg.Name)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	var cfg *testConfig
	require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("TEST_POLL_INTERVAL", "not-a-duration")

	var cfg testConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadFrom_File(t *testing.T) {
	t.Setenv("TEST_FILE_VALUE", "")
	os.Unsetenv("TEST_FILE_VALUE")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_FILE_VALUE=from-file\n"), 0o644))

	var cfg struct {
		Value string `env:"TEST_FILE_VALUE"`
	}
	require.NoError(t, config.LoadFrom(&cfg, path))
	assert.Equal(t, "from-file", cfg.Value)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.LoadFrom(&cfg, filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, config.ErrLoadingEnvFiles)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Setenv("TEST_POLL_INTERVAL", "garbage")

	var cfg testConfig
	require.Panics(t, func() {
		config.MustLoad(&cfg)
	})
}

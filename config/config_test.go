package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"location-selector/models"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, models.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, filepath.Join(home, HomeDir, "location-selector.log"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.AltScreen)
	assert.False(t, cfg.NoColor)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LOCSEL_BASE_URL", "http://localhost:9000/")
	t.Setenv("LOCSEL_TIMEOUT", "5s")
	t.Setenv("LOCSEL_LOG_LEVEL", "debug")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFlagsBeatEnv(t *testing.T) {
	isolate(t)
	t.Setenv("LOCSEL_BASE_URL", "http://from-env:9000")

	cfg, err := Load(newFlags(t, "--base-url=http://from-flag:9000", "--no-alt-screen", "--log-file=-"))
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag:9000", cfg.BaseURL)
	assert.False(t, cfg.AltScreen)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "selector.yaml")
	content := "base_url: http://from-file:7000\ntimeout: 2s\nno_color: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(newFlags(t, "--config="+path))
	require.NoError(t, err)

	assert.Equal(t, "http://from-file:7000", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	isolate(t)

	_, err := Load(newFlags(t, "--config="+filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
}

func TestLoadInvalidValue(t *testing.T) {
	isolate(t)
	t.Setenv("LOCSEL_LOG_LEVEL", "loud")

	_, err := Load(nil)

	var cfgErr *models.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "log_level", cfgErr.Field)
}

func TestLoadConfigFileFromEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nno_alt_screen: true\n"), 0o644))
	t.Setenv("LOCSEL_CONFIG_FILE", path)

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.AltScreen)
}

func TestLoadConfigFlagBeatsEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	fromEnv := filepath.Join(dir, "env.yaml")
	fromFlag := filepath.Join(dir, "flag.yaml")
	require.NoError(t, os.WriteFile(fromEnv, []byte("log_level: warn\n"), 0o644))
	require.NoError(t, os.WriteFile(fromFlag, []byte("log_level: error\n"), 0o644))
	t.Setenv("LOCSEL_CONFIG_FILE", fromEnv)

	cfg, err := Load(newFlags(t, "--config="+fromFlag))
	require.NoError(t, err)

	assert.Equal(t, fromFlag, cfg.ConfigFile)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadDecodesEveryKey(t *testing.T) {
	isolate(t)
	t.Setenv("LOCSEL_NO_COLOR", "true")
	t.Setenv("LOCSEL_NO_ALT_SCREEN", "true")
	t.Setenv("LOCSEL_LOG_FILE", "/tmp/picker.log")

	cfg, err := Load(newFlags(t, "--timeout=750ms"))
	require.NoError(t, err)

	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.AltScreen)
	assert.Equal(t, "/tmp/picker.log", cfg.LogFile)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
}

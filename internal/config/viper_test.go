package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_KEY", "")
	t.Setenv("WDP_OPENWEATHER_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.OpenWeather.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.OpenWeather.Timeout)
	assert.Equal(t, "2006-01-02 03:04:05", cfg.OpenWeather.TimeLayout)
	assert.Empty(t, cfg.OpenWeather.APIKey)
	assert.Equal(t, "weather_app.log", cfg.Logging.OutputPath)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadLegacyAPIKeyEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("WDP_OPENWEATHER_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.OpenWeather.APIKey)
}

func TestLoadPrefixedEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WDP_OPENWEATHER_API_KEY", "prefixed-key")
	t.Setenv("WDP_LOGGING_LEVEL", "debug")
	t.Setenv("WDP_OPENWEATHER_TIMEOUT", "3s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.OpenWeather.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3*time.Second, cfg.OpenWeather.Timeout)
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("API_KEY", "")
	t.Cleanup(func() { os.Unsetenv("WDP_OPENWEATHER_BASE_URL") })

	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("WDP_OPENWEATHER_BASE_URL=http://localhost:9999/weather\n"), 0o600)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/weather", cfg.OpenWeather.BaseURL)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("API_KEY", "")
	t.Setenv("WDP_OPENWEATHER_API_KEY", "")

	path := filepath.Join(dir, "weather.yaml")
	content := []byte(`
openweather:
  api_key: file-key
  time_layout: "2006-01-02 15:04:05"
server:
  port: 9090
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.OpenWeather.APIKey)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.OpenWeather.TimeLayout)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestGetConfigFallsBackToDefaults(t *testing.T) {
	cfg := GetConfig()
	require.NotNil(t, cfg)

	custom := NewDefaultConfig()
	custom.Server.Port = 1234
	SetConfig(custom)
	assert.Equal(t, 1234, GetConfig().Server.Port)
}

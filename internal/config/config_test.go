package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8001", cfg.Engine.ServiceURL)
	assert.Equal(t, 120, cfg.Engine.Timeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "kairos-go", cfg.Telemetry.ServiceName)
	assert.False(t, cfg.Forecast.BatchFailFast)
	assert.False(t, cfg.Forecast.CacheEnabled)
	assert.Equal(t, "60s", cfg.Forecast.CacheTTL)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("ENGINE_SERVICE_URL", "http://engine:9000")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://engine:9000", cfg.Engine.ServiceURL)
	assert.Equal(t, "production", cfg.Environment)
}

func TestCacheTTLDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, ForecastConfig{CacheTTL: "30s"}.CacheTTLDuration())
	assert.Equal(t, 5*time.Minute, ForecastConfig{CacheTTL: "5m"}.CacheTTLDuration())
	assert.Equal(t, time.Minute, ForecastConfig{CacheTTL: ""}.CacheTTLDuration())
	assert.Equal(t, time.Minute, ForecastConfig{CacheTTL: "garbage"}.CacheTTLDuration())
	assert.Equal(t, time.Minute, ForecastConfig{CacheTTL: "-10s"}.CacheTTLDuration())
}

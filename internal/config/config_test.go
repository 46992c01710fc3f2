package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Fetch.TimeoutSecs)
	assert.Equal(t, 30, cfg.Fetch.RenderTimeoutSecs)
	assert.Equal(t, 3, cfg.Fetch.SettleDelaySecs)
	assert.Equal(t, 2, cfg.Search.ProviderDelaySecs)
	assert.Equal(t, "https://html.duckduckgo.com", cfg.Search.DuckDuckGoBaseURL)
	assert.Equal(t, "selectors.yml", cfg.Selectors.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("IDENTITY_LOG_LEVEL", "debug")
	t.Setenv("IDENTITY_FETCH_TIMEOUT_SECS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Fetch.TimeoutSecs)
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "shouting", Format: "json"})
	assert.Error(t, err)
}

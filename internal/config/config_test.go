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

	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, "adpulse.interactions", cfg.RabbitExchange)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTLPrediction)
	assert.True(t, cfg.RLEnabled)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("RL_ENABLED", "false")
	t.Setenv("RL_IP_LIMIT", "10")
	t.Setenv("CACHE_TTL_PREDICTION", "30s")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://demo.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.False(t, cfg.RLEnabled)
	assert.Equal(t, 10, cfg.RLLimit)
	assert.Equal(t, 30*time.Second, cfg.CacheTTLPrediction)
	assert.Equal(t, []string{"http://localhost:3000", "https://demo.example.com"}, cfg.CORSOrigins)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("CACHE_TTL_PREDICTION", "soon")
	t.Setenv("RL_IP_LIMIT", "many")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.CacheTTLPrediction)
	assert.Equal(t, 300, cfg.RLLimit)
}

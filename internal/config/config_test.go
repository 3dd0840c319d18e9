package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15, cfg.EnrichLimit)
	assert.Equal(t, 5, cfg.EnrichConcurrency)
	assert.Equal(t, 30, cfg.IPLimitPerMin)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.GitHubRPS)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("ENRICH_LIMIT", "25")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, 25, cfg.EnrichLimit)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	t.Setenv("ENRICH_LIMIT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

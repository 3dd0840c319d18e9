package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all environment-driven settings.
type Config struct {
	Port        string
	GitHubToken string

	// EnrichLimit is the number of most-recently-pushed repos that get
	// per-repo language and README lookups. This is an explicit cost
	// control: repos beyond the limit score without enrichment data.
	EnrichLimit       int
	EnrichConcurrency int
	GitHubRPS         float64

	RequestTimeout time.Duration
	IPLimitPerMin  int
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GitHubToken: getEnv("GITHUB_TOKEN", ""),
	}

	var err error
	if cfg.EnrichLimit, err = getEnvInt("ENRICH_LIMIT", 15); err != nil {
		return nil, err
	}
	if cfg.EnrichConcurrency, err = getEnvInt("ENRICH_CONCURRENCY", 5); err != nil {
		return nil, err
	}
	if cfg.IPLimitPerMin, err = getEnvInt("IP_LIMIT_PER_MIN", 30); err != nil {
		return nil, err
	}

	rps, err := getEnvInt("GITHUB_RPS", 0)
	if err != nil {
		return nil, err
	}
	cfg.GitHubRPS = float64(rps)

	timeoutSecs, err := getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = time.Duration(timeoutSecs) * time.Second

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the polymove service.
type Config struct {
	Port             string
	DatabaseURL      string
	RedisURL         string
	CatalogBaseURL   string // offer catalog REST endpoint
	CityIntelAddr    string // city news/scoring gRPC endpoint
	UpstreamTimeout  int    // per-call upstream timeout, milliseconds
	RecommendPool    int    // candidate pool gathered before ranking
	NewsPerCity      int    // news items attached per enriched offer
	ProbeIntervalMin int    // upstream health probe interval, minutes
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	catalogURL := os.Getenv("CATALOG_BASE_URL")
	if catalogURL == "" {
		return nil, fmt.Errorf("CATALOG_BASE_URL is required")
	}

	cityIntelAddr := os.Getenv("CITYINTEL_GRPC_ADDR")
	if cityIntelAddr == "" {
		return nil, fmt.Errorf("CITYINTEL_GRPC_ADDR is required")
	}

	port := os.Getenv("POLYMOVE_PORT")
	if port == "" {
		port = "8080"
	}

	timeout, err := intEnv("UPSTREAM_TIMEOUT_MS", 800)
	if err != nil {
		return nil, err
	}

	pool, err := intEnv("RECOMMEND_POOL_SIZE", 100)
	if err != nil {
		return nil, err
	}

	newsPerCity, err := intEnv("NEWS_PER_CITY", 3)
	if err != nil {
		return nil, err
	}

	probeInterval, err := intEnv("PROBE_INTERVAL_MINUTES", 5)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:             port,
		DatabaseURL:      dbURL,
		RedisURL:         redisURL,
		CatalogBaseURL:   catalogURL,
		CityIntelAddr:    cityIntelAddr,
		UpstreamTimeout:  timeout,
		RecommendPool:    pool,
		NewsPerCity:      newsPerCity,
		ProbeIntervalMin: probeInterval,
	}, nil
}

// intEnv parses an optional positive-integer variable, falling back to def.
func intEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, s)
	}
	return v, nil
}

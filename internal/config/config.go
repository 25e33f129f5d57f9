package config

import (
	"os"
	"time"
)

// Config collects the env-driven knobs. Defaults keep the service runnable
// with no environment at all: embedded dataset, in-memory cache, port 3000.
type Config struct {
	Port        string
	DatasetPath string        // empty = embedded dataset
	FetchDelay  time.Duration // simulated gateway latency
	StaleWindow time.Duration // how long a fetched collection counts as fresh
	SessionTTL  time.Duration // dashboard session idle eviction
	RedisAddr   string        // empty = in-memory cache store
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "3000"),
		DatasetPath: os.Getenv("DATASET_PATH"),
		FetchDelay:  getDuration("FETCH_DELAY", 500*time.Millisecond),
		StaleWindow: getDuration("STALE_WINDOW", 5*time.Minute),
		SessionTTL:  getDuration("SESSION_TTL", 30*time.Minute),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

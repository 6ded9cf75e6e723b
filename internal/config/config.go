package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel string

	NATSURL           string
	NATSSubmitSubject string
	NATSScoredSubject string

	OllamaURL        string
	OllamaEmbedModel string

	EmbedMaxRunes       int
	RedundancyThreshold float64
	RedundancySoftFloor float64
	FatigueLookback     int
	FatigueTrendWeight  float64
	StopThreshold       float64
	CriticalBoost       float64

	CacheBackend    string
	CacheTTLSeconds int
	RedisAddr       string
	RedisPrefix     string

	EmbedRateLimitRPS   float64
	EmbedRateLimitBurst int

	CatalogPath    string
	HeuristicsPath string

	WorkerMetricsPort string
}

func Load() Config {
	return Config{
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		NATSURL:           mustEnv("NATS_URL", "nats://localhost:4222"),
		NATSSubmitSubject: mustEnv("NATS_SUBMIT_SUBJECT", "survey.answers.submitted"),
		NATSScoredSubject: mustEnv("NATS_SCORED_SUBJECT", "survey.answers.scored"),

		OllamaURL:        mustEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaEmbedModel: mustEnv("OLLAMA_EMBED_MODEL", "nomic-embed-text"),

		EmbedMaxRunes:       mustEnvInt("EMBED_MAX_RUNES", 8000),
		RedundancyThreshold: mustEnvFloat("REDUNDANCY_THRESHOLD", 0.85),
		RedundancySoftFloor: mustEnvFloat("REDUNDANCY_SOFT_FLOOR", 0.60),
		FatigueLookback:     mustEnvInt("FATIGUE_LOOKBACK", 3),
		FatigueTrendWeight:  mustEnvFloat("FATIGUE_TREND_WEIGHT", 0.3),
		StopThreshold:       mustEnvFloat("STOP_THRESHOLD", 0.75),
		CriticalBoost:       mustEnvFloat("CRITICAL_BOOST", 0.3),

		CacheBackend:    mustEnv("CACHE_BACKEND", "memory"),
		CacheTTLSeconds: mustEnvInt("CACHE_TTL_SECONDS", 3600),
		RedisAddr:       mustEnv("REDIS_ADDR", "localhost:6379"),
		RedisPrefix:     mustEnv("REDIS_PREFIX", "survey:embed"),

		EmbedRateLimitRPS:   mustEnvFloat("EMBED_RATE_LIMIT_RPS", 0),
		EmbedRateLimitBurst: mustEnvInt("EMBED_RATE_LIMIT_BURST", 1),

		CatalogPath:    mustEnv("CATALOG_PATH", "./config/catalog.yaml"),
		HeuristicsPath: mustEnv("HEURISTICS_PATH", ""),

		WorkerMetricsPort: mustEnv("WORKER_METRICS_PORT", "9090"),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

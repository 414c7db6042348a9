package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the console reads from the environment. The
// upstream base URL is the one setting with no default: the console is a
// thin view over that API and cannot run without it.
type Config struct {
	Port            string
	UpstreamBaseURL string
	RedisURL        string
	SessionTTL      time.Duration
	LogLevel        string
	LogFile         string
	CORSOrigins     string
}

// FromEnv reads the configuration. godotenv.Load is the caller's job so
// tests can set plain env vars.
func FromEnv() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		UpstreamBaseURL: os.Getenv("UPSTREAM_BASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
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

package config

import (
	"github.com/joho/godotenv"
	"log/slog"
	"os"
	"time"
)

// DefaultBaseURL is the fixed root of the CDN77 v3 REST API.
const DefaultBaseURL = "https://api.cdn77.com/v3"

// DefaultTimeout bounds a single API round trip. The client never retries,
// so a request that misses the deadline fails the whole invocation.
const DefaultTimeout = 30 * time.Second

type Config struct {
	APIToken string
	BaseURL  string
	Timeout  time.Duration
}

// Load reads configuration from a .env file when present, then from
// environment variables. The token may still arrive later via the
// --api-token flag, so an empty token is not an error here.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		APIToken: getEnv("CDN77_API_TOKEN", ""),
		BaseURL:  getEnv("CDN77_API_BASE", DefaultBaseURL),
		Timeout:  DefaultTimeout,
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

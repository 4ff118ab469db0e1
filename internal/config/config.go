package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL     = "http://localhost:8000/api"
	defaultStoreDSN       = "servicehub.db"
	defaultRequestTimeout = "30s"
	defaultPollInterval   = "30s"
	defaultDebounce       = "300ms"
)

type Config struct {
	AppEnv         string
	APIBaseURL     string
	StoreDSN       string
	RequestTimeout time.Duration
	// PollInterval drives the background complaint refresh.
	PollInterval time.Duration
	// SearchDebounce is the quiet period before a search query is applied.
	SearchDebounce time.Duration
	PageSize       int
}

// Load reads .env if present, then the environment, with sane defaults for
// local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		APIBaseURL:     getEnv("API_BASE_URL", defaultAPIBaseURL),
		StoreDSN:       getEnv("STORE_DSN", defaultStoreDSN),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", defaultRequestTimeout),
		PollInterval:   getDuration("COMPLAINT_POLL_INTERVAL", defaultPollInterval),
		SearchDebounce: getDuration("SEARCH_DEBOUNCE", defaultDebounce),
		PageSize:       getInt("PAGE_SIZE", 12),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key, def string) time.Duration {
	v := getEnv(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port         string
	StoreDriver  string
	DatabaseURL  string
	DBMaxConns   int
	APIKeyHash   string
	APIKeySecret string
	LogLevel     string
	LogFormat    string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	maxConns, err := getEnvInt("DB_MAX_CONNS", 4)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		StoreDriver:  getEnv("STORE_DRIVER", StorePostgres),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DBMaxConns:   maxConns,
		APIKeyHash:   getEnv("API_KEY_HASH", ""),
		APIKeySecret: getEnv("API_KEY_SECRET", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}

	switch cfg.StoreDriver {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
	case StoreMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// AuthEnabled reports whether mutating routes require an API key.
func (c Config) AuthEnabled() bool {
	return c.APIKeyHash != "" || c.APIKeySecret != ""
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Seed source kinds accepted by SEED_SOURCE.
const (
	SeedSample   = "sample"
	SeedFile     = "file"
	SeedHTTP     = "http"
	SeedPostgres = "postgres"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port             string
	AuthToken        string
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	IdleTimeoutSecs  int
	RateLimitPerMin  int

	SeedSource      string
	SeedFile        string
	SeedURL         string
	SeedAPIKey      string
	SeedTimeoutSecs int

	DBURL             string
	DBMaxConns        int
	DBMinConns        int
	DBConnTimeoutSecs int
	DBStatementCache  int
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		AuthToken:         os.Getenv("AUTH_TOKEN"),
		ReadTimeoutSecs:   getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs:  getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:   getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MIN", 600),
		SeedSource:        strings.ToLower(getEnv("SEED_SOURCE", SeedSample)),
		SeedFile:          os.Getenv("SEED_FILE"),
		SeedURL:           os.Getenv("SEED_URL"),
		SeedAPIKey:        os.Getenv("SEED_API_KEY"),
		SeedTimeoutSecs:   getEnvInt("SEED_TIMEOUT_SECS", 5),
		DBURL:             os.Getenv("DB_URL"),
		DBMaxConns:        getEnvInt("DB_MAX_CONNS", 4),
		DBMinConns:        getEnvInt("DB_MIN_CONNS", 0),
		DBConnTimeoutSecs: getEnvInt("DB_CONN_TIMEOUT_SECS", 10),
		DBStatementCache:  getEnvInt("DB_STATEMENT_CACHE_CAPACITY", 64),
	}

	if cfg.AuthToken == "" {
		return Config{}, fmt.Errorf("AUTH_TOKEN is required")
	}
	if cfg.RateLimitPerMin < 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_PER_MIN must be non-negative")
	}
	if cfg.SeedTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SEED_TIMEOUT_SECS must be positive")
	}

	switch cfg.SeedSource {
	case SeedSample:
	case SeedFile:
		if cfg.SeedFile == "" {
			return Config{}, fmt.Errorf("SEED_FILE is required when SEED_SOURCE=file")
		}
	case SeedHTTP:
		if cfg.SeedURL == "" {
			return Config{}, fmt.Errorf("SEED_URL is required when SEED_SOURCE=http")
		}
		if cfg.SeedAPIKey == "" {
			return Config{}, fmt.Errorf("SEED_API_KEY is required when SEED_SOURCE=http")
		}
	case SeedPostgres:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required when SEED_SOURCE=postgres")
		}
		if cfg.DBMaxConns <= 0 {
			return Config{}, fmt.Errorf("DB_MAX_CONNS must be positive")
		}
		if cfg.DBMinConns < 0 {
			return Config{}, fmt.Errorf("DB_MIN_CONNS must be non-negative")
		}
		if cfg.DBMinConns > cfg.DBMaxConns {
			return Config{}, fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
		}
		if cfg.DBStatementCache < 0 {
			return Config{}, fmt.Errorf("DB_STATEMENT_CACHE_CAPACITY must be non-negative")
		}
	default:
		return Config{}, fmt.Errorf("SEED_SOURCE %q is not one of sample, file, http, postgres", cfg.SeedSource)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

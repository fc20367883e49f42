package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the wardview API service.
type Config struct {
	HTTP struct {
		Addr string
	}
	LLM struct {
		Provider string
		APIKey   string
		Model    string
		Endpoint string
		Timeout  int // seconds
	}
	// DBEnabled controls startup hydration of the patient snapshot from
	// Postgres. When false (default) the built-in seed is used, so a plain
	// `go run ./cmd/server` works without any infrastructure.
	DBEnabled bool
	Database  struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	// RedisEnabled switches the note store from the in-process fallback to
	// Redis.
	RedisEnabled bool
	Redis        struct {
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from the environment, applying defaults suitable
// for local development.
func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.LLM.Provider = getEnv("LLM_PROVIDER", "gemini")
	cfg.LLM.APIKey = getEnv("LLM_API_KEY", os.Getenv("GEMINI_API_KEY"))
	cfg.LLM.Model = getEnv("LLM_MODEL", "")
	cfg.LLM.Endpoint = getEnv("LLM_ENDPOINT", "")
	cfg.LLM.Timeout = parseInt(getEnv("LLM_TIMEOUT", "30"), 30)

	cfg.DBEnabled = getEnv("DB_ENABLED", "false") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Name = getEnv("DB_NAME", "wardview")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.RedisEnabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

// DSN builds the lib/pq connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

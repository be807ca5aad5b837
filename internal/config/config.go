package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Clause library
	ClausesDir           string
	MaxConcurrentExtract int

	// Will storage
	DatabasePath string

	// Auth. Empty disables the bearer-token check.
	APIKey string

	// Upload limits
	MaxUploadBytes int64
}

// Load reads configuration from the environment. Variables from an optional
// .env file in the working directory are applied first; real environment
// variables win.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "3000"),

		ClausesDir:           envOr("CLAUSES_DIR", "assets/clauses"),
		MaxConcurrentExtract: envInt("MAX_CONCURRENT_EXTRACT", 4),

		DatabasePath: envOr("DATABASE_PATH", "db.sqlite"),

		APIKey: os.Getenv("API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20971520), // 20MB
	}

	if cfg.MaxConcurrentExtract <= 0 {
		cfg.MaxConcurrentExtract = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20971520
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ClausesDir == "" {
		return fmt.Errorf("CLAUSES_DIR is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", c.Port)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

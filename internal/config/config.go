package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// BooksDir is the directory scanned (non-recursively) for PDFs.
	BooksDir string

	// LogsDir is where per-day Markdown logs are written.
	LogsDir string

	// Interval is the pause between scheduled runs.
	Interval time.Duration

	// Anthropic API
	AnthropicAPIKey string
	Model           string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		BooksDir:        getEnv("BOOKS_DIR", "."),
		LogsDir:         getEnv("LOGS_DIR", "logs"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		Model:           getEnv("ORACLE_MODEL", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	minutes, err := strconv.Atoi(getEnv("INTERVAL_MINUTES", "180"))
	if err != nil {
		return nil, fmt.Errorf("invalid INTERVAL_MINUTES: %w", err)
	}
	if minutes <= 0 {
		return nil, fmt.Errorf("invalid INTERVAL_MINUTES: must be positive, got %d", minutes)
	}
	cfg.Interval = time.Duration(minutes) * time.Minute

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.BooksDir == "" {
		return fmt.Errorf("BOOKS_DIR is required")
	}
	if c.LogsDir == "" {
		return fmt.Errorf("LOGS_DIR is required")
	}
	return nil
}

// ValidateForOracle checks configuration needed to query the model.
func (c *Config) ValidateForOracle() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.AnthropicAPIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Package config provides configuration loading and validation for the
// interview agent.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime configuration for the API server and CLI.
// Values come from environment variables; godotenv loading happens in main
// before this is read.
type Config struct {
	Port                 int    // HTTP listen port
	DatabaseURL          string // PostgreSQL connection URL
	APIKey               string // Gemini API key
	ReviewerPasswordHash string // bcrypt hash of the reviewer passphrase
}

// Load reads configuration from environment variables. PORT defaults to 8080.
// DATABASE_URL and REVIEWER_PASSWORD_HASH are only required by the server;
// callers that don't need them pass the corresponding requirement flags.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 8080,
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		APIKey:               os.Getenv("GEMINI_API_KEY"),
		ReviewerPasswordHash: os.Getenv("REVIEWER_PASSWORD_HASH"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates value ranges. Required-field checks are separate so the
// CLI can run without server-only settings.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// RequireAPIKey returns an error when no Gemini API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	return nil
}

// RequireServer checks the settings the API server cannot start without.
func (c *Config) RequireServer() error {
	if err := c.RequireAPIKey(); err != nil {
		return err
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.ReviewerPasswordHash == "" {
		return fmt.Errorf("REVIEWER_PASSWORD_HASH is required but not set")
	}
	return nil
}

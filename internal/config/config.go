// Package config provides environment-driven configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults mirror the service's historical deployment values.
const (
	DefaultPort            = 8000
	DefaultEmbeddingModel  = "text-embedding-004"
	DefaultProviderTimeout = 30 * time.Second
	DefaultMaxSkills       = 25
)

// Config holds the service configuration. All fields come from the
// environment; missing values use defaults.
type Config struct {
	Port            int           // PORT
	GeminiAPIKey    string        // GEMINI_API_KEY
	EmbeddingModel  string        // EMBEDDING_MODEL
	ProviderTimeout time.Duration // PROVIDER_TIMEOUT, seconds
	MaxSkills       int           // MAX_SKILLS
}

// FromEnv reads configuration from the environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            DefaultPort,
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel:  DefaultEmbeddingModel,
		ProviderTimeout: DefaultProviderTimeout,
		MaxSkills:       DefaultMaxSkills,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		cfg.EmbeddingModel = v
	}
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT %q: %w", v, err)
		}
		cfg.ProviderTimeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("MAX_SKILLS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_SKILLS %q: %w", v, err)
		}
		cfg.MaxSkills = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1-65535, got %d", c.Port)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("provider timeout must be positive, got %s", c.ProviderTimeout)
	}
	if c.MaxSkills < 1 {
		return fmt.Errorf("max skills must be positive, got %d", c.MaxSkills)
	}
	return nil
}

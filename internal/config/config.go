// Package config builds the process configuration once at startup:
// defaults, then an optional TOML file, then FINDBGM_* environment
// overrides. The resulting struct is threaded through constructors so no
// component reads the environment on its own.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr                     string `toml:"addr"`
	ReadHeaderTimeoutSeconds int    `toml:"read_header_timeout_seconds"`
	ShutdownTimeoutSeconds   int    `toml:"shutdown_timeout_seconds"`
}

// CatalogConfig contains the music catalog client settings. An empty
// BaseURL means no catalog is configured and the service runs in mock mode.
type CatalogConfig struct {
	BaseURL        string `toml:"base_url"`
	AccessToken    string `toml:"access_token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxRetries     int    `toml:"max_retries"`
	RetryBackoffMs int    `toml:"retry_backoff_ms"`
}

// AudioConfig contains the music search and recommendation limits.
type AudioConfig struct {
	MaxDurationSeconds int `toml:"max_duration_seconds"`
	SearchLimitPerTerm int `toml:"search_limit_per_term"`
	MaxSearchTerms     int `toml:"max_search_terms"`
	MaxSearchResults   int `toml:"max_search_results"`
	MaxRecommendations int `toml:"max_recommendations"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                     ":8080",
			ReadHeaderTimeoutSeconds: 15,
			ShutdownTimeoutSeconds:   10,
		},
		Catalog: CatalogConfig{
			TimeoutSeconds: 15,
			MaxRetries:     3,
			RetryBackoffMs: 500,
		},
		Audio: AudioConfig{
			MaxDurationSeconds: 300,
			SearchLimitPerTerm: 10,
			MaxSearchTerms:     5,
			MaxSearchResults:   20,
			MaxRecommendations: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file, and
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	envString("FINDBGM_ADDR", &c.Server.Addr)
	envString("FINDBGM_CATALOG_BASE_URL", &c.Catalog.BaseURL)
	envString("FINDBGM_CATALOG_ACCESS_TOKEN", &c.Catalog.AccessToken)
	envInt("FINDBGM_CATALOG_TIMEOUT_SECONDS", &c.Catalog.TimeoutSeconds)
	envInt("FINDBGM_CATALOG_MAX_RETRIES", &c.Catalog.MaxRetries)
	envInt("FINDBGM_CATALOG_RETRY_BACKOFF_MS", &c.Catalog.RetryBackoffMs)
	envInt("FINDBGM_MAX_DURATION", &c.Audio.MaxDurationSeconds)
	envInt("FINDBGM_SEARCH_LIMIT", &c.Audio.SearchLimitPerTerm)
	envInt("FINDBGM_MAX_SEARCH_TERMS", &c.Audio.MaxSearchTerms)
	envInt("FINDBGM_MAX_SEARCH_RESULTS", &c.Audio.MaxSearchResults)
	envInt("FINDBGM_MAX_RECOMMENDATIONS", &c.Audio.MaxRecommendations)
	envString("FINDBGM_LOG_LEVEL", &c.Logging.Level)
	envString("FINDBGM_LOG_FORMAT", &c.Logging.Format)
}

func envString(key string, dst *string) {
	if raw := os.Getenv(key); raw != "" {
		*dst = raw
	}
}

func envInt(key string, dst *int) {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}

// Package config loads atlasd configuration from defaults, an optional YAML
// file, and environment overrides, in that order. A .env file in the working
// directory is honored before environment variables are read.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultAddr          = ":8080"
	DefaultDatasetPath   = "data/countries.json"
	DefaultAPIBaseURL    = "http://localhost:8080"
	DefaultClientTimeout = 10 * time.Second
	DefaultCORSOrigin    = "*"
)

// Environment variable names recognized as overrides.
const (
	EnvAddr     = "ATLASD_ADDR"
	EnvDataset  = "ATLASD_DATASET"
	EnvAPI      = "ATLASD_API"
	EnvLogLevel = "ATLASD_LOG_LEVEL"
)

// ServerConfig configures the HTTP API process.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// Dataset is the path to the country dataset file loaded at startup.
	Dataset string `yaml:"dataset"`

	// CORSAllowedOrigin is the value served in Access-Control-Allow-Origin.
	// The default "*" lets a separately served client call the API.
	CORSAllowedOrigin string `yaml:"cors_allowed_origin"`
}

// ClientConfig configures the API client used by browse and the countries
// subcommands.
type ClientConfig struct {
	// BaseURL is the root of the atlasd API, without trailing slash.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each request. Zero means DefaultClientTimeout.
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig configures structured logging output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the root configuration object.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Client  ClientConfig  `yaml:"client"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              DefaultAddr,
			Dataset:           DefaultDatasetPath,
			CORSAllowedOrigin: DefaultCORSOrigin,
		},
		Client: ClientConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultClientTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty or the file does not exist), then
// environment overrides. A .env file is loaded first so both the YAML step
// and the override step see it.
func Load(path string) (*Config, error) {
	// Missing .env is the common case and not an error.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if err := mergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// mergeYAML overlays the top-level sections present in the file at path onto
// cfg. Sections absent from the overlay keep their current values; within a
// present section, fields left unset keep their defaults.
func mergeYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	for key, node := range overlay {
		var decodeErr error
		switch key {
		case "server":
			section := cfg.Server
			if decodeErr = node.Decode(&section); decodeErr == nil {
				cfg.Server = section
			}
		case "client":
			section := cfg.Client
			if decodeErr = node.Decode(&section); decodeErr == nil {
				cfg.Client = section
			}
		case "logging":
			section := cfg.Logging
			if decodeErr = node.Decode(&section); decodeErr == nil {
				cfg.Logging = section
			}
		default:
			// Unknown top-level keys are ignored.
		}
		if decodeErr != nil {
			return fmt.Errorf("config %s: section %q: %w", path, key, decodeErr)
		}
	}

	return nil
}

// applyEnvOverrides applies recognized environment variables on top of cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvDataset); v != "" {
		cfg.Server.Dataset = v
	}
	if v := os.Getenv(EnvAPI); v != "" {
		cfg.Client.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
}

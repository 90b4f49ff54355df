package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the server configuration. Values come from defaults, then an
// optional YAML file named by ITEMSVC_CONFIG, then environment variables
// (PORT, LOG_LEVEL, CORS_ORIGIN). Environment wins over file.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `yaml:"port"`

	// LogLevel controls logger verbosity: debug, info, or error.
	LogLevel string `yaml:"log_level"`

	// CORSOrigin is the value served in Access-Control-Allow-Origin.
	CORSOrigin string `yaml:"cors_origin"`

	// HTTP server timeouts, in seconds.
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int `yaml:"idle_timeout_seconds"`

	// ShutdownTimeoutSeconds bounds graceful shutdown on SIGINT.
	ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:                   3030,
		LogLevel:               "info",
		CORSOrigin:             "*",
		ReadTimeoutSeconds:     5,
		WriteTimeoutSeconds:    10,
		IdleTimeoutSeconds:     120,
		ShutdownTimeoutSeconds: 5,
	}
}

// LoadConfig assembles the configuration from all sources.
func LoadConfig() (Config, error) {
	// .env is optional; variables already in the environment win.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path := os.Getenv("ITEMSVC_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects impossible values and clamps omitted ones back to defaults.
func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	def := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.CORSOrigin == "" {
		c.CORSOrigin = def.CORSOrigin
	}
	if c.ReadTimeoutSeconds <= 0 {
		c.ReadTimeoutSeconds = def.ReadTimeoutSeconds
	}
	if c.WriteTimeoutSeconds <= 0 {
		c.WriteTimeoutSeconds = def.WriteTimeoutSeconds
	}
	if c.IdleTimeoutSeconds <= 0 {
		c.IdleTimeoutSeconds = def.IdleTimeoutSeconds
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		c.ShutdownTimeoutSeconds = def.ShutdownTimeoutSeconds
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ReadTimeout returns the read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown deadline as a duration.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

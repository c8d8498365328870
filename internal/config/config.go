// Package config loads the application configuration from an optional
// YAML file layered over built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	OpenAPI OpenAPIConfig `yaml:"openapi"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                string `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// ReadTimeout returns the configured read timeout.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// OpenAPIConfig holds OpenAPI generation configuration.
type OpenAPIConfig struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewDefaultConfig returns a configuration with default values.
func NewDefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:                "",
			Port:                "8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		OpenAPI: OpenAPIConfig{
			Title:       "Todo API",
			Version:     "1.0.0",
			Description: "A minimal REST API exposing CRUD operations over an in-memory todo collection",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*AppConfig, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// Package config provides configuration types and loading for the negotiation service.
package config

import (
	"fmt"
	"time"
)

// Default server settings.
const (
	DefaultPort               = 8080
	DefaultReadTimeout        = 30 * time.Second
	DefaultWriteTimeout       = 30 * time.Second
	DefaultIdleTimeout        = 120 * time.Second
	DefaultShutdownTimeout    = 30 * time.Second
	DefaultMaxRequestBodySize = 10 << 20 // 10 MB
)

// Config is the root configuration of the negotiation service.
type Config struct {
	// Server contains HTTP listener settings.
	Server ServerConfig `yaml:"server" json:"server"`

	// Formats selects the codecs available for negotiation.
	Formats FormatsConfig `yaml:"formats" json:"formats"`

	// Logging contains logger settings.
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Metrics contains Prometheus endpoint settings.
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `yaml:"tracing" json:"tracing"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Address         string   `yaml:"address,omitempty" json:"address,omitempty"`
	Port            int      `yaml:"port" json:"port"`
	ReadTimeout     Duration `yaml:"readTimeout,omitempty" json:"readTimeout,omitempty"`
	WriteTimeout    Duration `yaml:"writeTimeout,omitempty" json:"writeTimeout,omitempty"`
	IdleTimeout     Duration `yaml:"idleTimeout,omitempty" json:"idleTimeout,omitempty"`
	ShutdownTimeout Duration `yaml:"shutdownTimeout,omitempty" json:"shutdownTimeout,omitempty"`

	// MaxRequestBodySize is the maximum request body size in bytes.
	// Zero disables the limit.
	MaxRequestBodySize int64 `yaml:"maxRequestBodySize,omitempty" json:"maxRequestBodySize,omitempty"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

// DefaultServerConfig returns default server settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:               DefaultPort,
		ReadTimeout:        Duration(DefaultReadTimeout),
		WriteTimeout:       Duration(DefaultWriteTimeout),
		IdleTimeout:        Duration(DefaultIdleTimeout),
		ShutdownTimeout:    Duration(DefaultShutdownTimeout),
		MaxRequestBodySize: DefaultMaxRequestBodySize,
	}
}

// DefaultConfig returns a configuration with every section set to its defaults.
func DefaultConfig() *Config {
	return &Config{
		Server:  DefaultServerConfig(),
		Formats: DefaultFormatsConfig(),
		Logging: DefaultLoggingConfig(),
		Metrics: DefaultMetricsConfig(),
		Tracing: DefaultTracingConfig(),
	}
}

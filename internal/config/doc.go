// Package config provides configuration types and loading for the
// negotiation service.
//
// This package defines the configuration model, YAML loading with
// environment variable substitution, and validation.
//
// # Features
//
//   - YAML configuration file loading
//   - Environment variable substitution with ${VAR:-default} syntax
//   - Configuration validation with detailed error reporting
//   - Format selection: enabled codecs, JSON engine and default format
//
// # Configuration Loading
//
// Load configuration from a YAML file:
//
//	cfg, err := config.LoadConfig("negotiator.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := config.ValidateConfig(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The formats section is read once at start-up. The codec registry built
// from it is never rebuilt while the process runs.
package config

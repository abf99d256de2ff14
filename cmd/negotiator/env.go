package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
)

// Environment variables read by the negotiator.
const (
	EnvConfigPath    = "NEGOTIATOR_CONFIG_PATH"
	EnvLogLevel      = "NEGOTIATOR_LOG_LEVEL"
	EnvLogFormat     = "NEGOTIATOR_LOG_FORMAT"
	EnvPort          = "NEGOTIATOR_PORT"
	EnvDefaultFormat = "NEGOTIATOR_DEFAULT_FORMAT"
	EnvJSONEngine    = "NEGOTIATOR_JSON_ENGINE"
	EnvJSONEnabled   = "NEGOTIATOR_JSON_ENABLED"
	EnvCBOREnabled   = "NEGOTIATOR_CBOR_ENABLED"
)

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBool accepts "true", "1", "yes", "on" and their negations,
// case-insensitively.
func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// applyEnvOverrides applies NEGOTIATOR_* variables on top of cfg.
func applyEnvOverrides(cfg *config.Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Server.Port = port
	}

	if v, ok := lookup(EnvDefaultFormat); ok && v != "" {
		cfg.Formats.Default = strings.ToLower(v)
	}

	if v, ok := lookup(EnvJSONEngine); ok && v != "" {
		cfg.Formats.JSON.Engine = strings.ToLower(v)
	}

	for key, target := range map[string]*bool{
		EnvJSONEnabled: &cfg.Formats.JSON.Enabled,
		EnvCBOREnabled: &cfg.Formats.CBOR.Enabled,
	} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		b, valid := parseBool(v)
		if !valid {
			return fmt.Errorf("invalid %s %q: expected a boolean", key, v)
		}
		*target = b
	}

	return nil
}

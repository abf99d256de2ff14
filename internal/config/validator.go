package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// HasErrors returns true if there are validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates service configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

// ValidateConfig validates a service configuration.
func ValidateConfig(config *Config) error {
	return NewValidator().Validate(config)
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(config *Config) error {
	v.errors = make(ValidationErrors, 0)

	if config == nil {
		v.addError("", "configuration is nil")
		return v.errors
	}

	v.validateServer(&config.Server)
	v.ValidateFormats(&config.Formats, "formats")
	v.validateLogging(&config.Logging)
	v.validateTracing(&config.Tracing)

	if v.errors.HasErrors() {
		return v.errors
	}
	return nil
}

// ValidateFormats validates a formats section under the given path.
func (v *Validator) ValidateFormats(fc *FormatsConfig, path string) {
	enabled := fc.EnabledFormats()
	if len(enabled) == 0 {
		v.addError(path, "at least one format must be enabled")
	}

	switch fc.Default {
	case "":
		v.addError(path+".default", "default format is required")
	case FormatJSON, FormatCBOR:
		if len(enabled) > 0 && !fc.IsEnabled(fc.Default) {
			v.addError(path+".default", fmt.Sprintf("default format %q is not enabled", fc.Default))
		}
	default:
		v.addError(path+".default", fmt.Sprintf("unknown format %q, must be json or cbor", fc.Default))
	}

	if fc.JSON.Enabled {
		switch fc.JSON.JSONEngine() {
		case EngineStandard, EngineAccelerated:
		default:
			v.addError(path+".json.engine",
				fmt.Sprintf("unknown engine %q, must be standard or accelerated", fc.JSON.Engine))
		}
	}
}

// validateServer validates the server section.
func (v *Validator) validateServer(sc *ServerConfig) {
	if sc.Port < 1 || sc.Port > 65535 {
		v.addError("server.port", fmt.Sprintf("port %d out of range 1-65535", sc.Port))
	}
	if sc.ReadTimeout < 0 {
		v.addError("server.readTimeout", "must not be negative")
	}
	if sc.WriteTimeout < 0 {
		v.addError("server.writeTimeout", "must not be negative")
	}
	if sc.MaxRequestBodySize < 0 {
		v.addError("server.maxRequestBodySize", "must not be negative")
	}
}

// validateLogging validates the logging section.
func (v *Validator) validateLogging(lc *LoggingConfig) {
	switch strings.ToLower(lc.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		v.addError("logging.level", fmt.Sprintf("unknown level %q", lc.Level))
	}

	switch lc.Format {
	case "", "json", "console":
	default:
		v.addError("logging.format", "format must be json or console")
	}
}

// validateTracing validates the tracing section.
func (v *Validator) validateTracing(tc *TracingConfig) {
	if tc.SamplingRate < 0 || tc.SamplingRate > 1 {
		v.addError("tracing.samplingRate", "sampling rate must be between 0 and 1")
	}
}

// Errors returns the errors collected by the last validation.
func (v *Validator) Errors() ValidationErrors {
	return v.errors
}

// addError adds a validation error.
func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{
		Path:    path,
		Message: message,
	})
}

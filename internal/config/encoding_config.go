package config

import (
	"sort"
)

// FormatsConfig selects the wire formats the service negotiates.
type FormatsConfig struct {
	// Default is the format used when the client states no preference.
	// Valid values: "json", "cbor".
	Default string `yaml:"default" json:"default"`

	// JSON contains JSON-specific options.
	JSON JSONFormatConfig `yaml:"json" json:"json"`

	// CBOR contains CBOR-specific options.
	CBOR CBORFormatConfig `yaml:"cbor" json:"cbor"`
}

// JSONFormatConfig contains JSON-specific options.
type JSONFormatConfig struct {
	// Enabled registers application/json.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Engine selects the JSON implementation.
	// Valid values: "standard", "accelerated".
	Engine string `yaml:"engine,omitempty" json:"engine,omitempty"`

	// PrettyPrint when true, formats JSON output with indentation.
	PrettyPrint bool `yaml:"prettyPrint,omitempty" json:"prettyPrint,omitempty"`
}

// CBORFormatConfig contains CBOR-specific options.
type CBORFormatConfig struct {
	// Enabled registers application/cbor.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Canonical when true, uses the deterministic core encoding
	// (sorted map keys, shortest integer forms).
	Canonical bool `yaml:"canonical,omitempty" json:"canonical,omitempty"`
}

// Format name constants.
const (
	// FormatJSON represents JSON encoding.
	FormatJSON = "json"

	// FormatCBOR represents CBOR encoding.
	FormatCBOR = "cbor"
)

// JSON engine constants.
const (
	// EngineStandard is the encoding/json implementation.
	EngineStandard = "standard"

	// EngineAccelerated is the goccy/go-json implementation.
	EngineAccelerated = "accelerated"
)

// ContentType constants for the supported formats.
const (
	// ContentTypeJSON is the JSON content type.
	ContentTypeJSON = "application/json"

	// ContentTypeCBOR is the CBOR content type.
	ContentTypeCBOR = "application/cbor"
)

// DefaultFormatsConfig returns JSON and CBOR enabled with JSON as default.
func DefaultFormatsConfig() FormatsConfig {
	return FormatsConfig{
		Default: FormatJSON,
		JSON: JSONFormatConfig{
			Enabled: true,
			Engine:  EngineStandard,
		},
		CBOR: CBORFormatConfig{
			Enabled: true,
		},
	}
}

// EnabledFormats returns the names of the enabled formats, sorted.
func (fc FormatsConfig) EnabledFormats() []string {
	var formats []string
	if fc.JSON.Enabled {
		formats = append(formats, FormatJSON)
	}
	if fc.CBOR.Enabled {
		formats = append(formats, FormatCBOR)
	}
	sort.Strings(formats)
	return formats
}

// IsEnabled reports whether the named format is enabled.
func (fc FormatsConfig) IsEnabled(format string) bool {
	switch format {
	case FormatJSON:
		return fc.JSON.Enabled
	case FormatCBOR:
		return fc.CBOR.Enabled
	default:
		return false
	}
}

// JSONEngine returns the configured JSON engine, defaulting to the standard one.
func (jc JSONFormatConfig) JSONEngine() string {
	if jc.Engine == "" {
		return EngineStandard
	}
	return jc.Engine
}

// FormatToContentType converts a format name to its canonical content type.
// Unknown names are returned unchanged.
func FormatToContentType(format string) string {
	switch format {
	case FormatJSON:
		return ContentTypeJSON
	case FormatCBOR:
		return ContentTypeCBOR
	default:
		return format
	}
}

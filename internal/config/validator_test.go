package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, ValidateConfig(DefaultConfig()))
}

func TestValidateConfig_Nil(t *testing.T) {
	err := ValidateConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration is nil")
}

func TestValidateConfig_Formats(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(fc *FormatsConfig)
		wantPath string
	}{
		{
			name: "no formats enabled",
			mutate: func(fc *FormatsConfig) {
				fc.JSON.Enabled = false
				fc.CBOR.Enabled = false
			},
			wantPath: "formats",
		},
		{
			name: "default not enabled",
			mutate: func(fc *FormatsConfig) {
				fc.Default = FormatCBOR
				fc.CBOR.Enabled = false
			},
			wantPath: "formats.default",
		},
		{
			name:     "missing default",
			mutate:   func(fc *FormatsConfig) { fc.Default = "" },
			wantPath: "formats.default",
		},
		{
			name:     "unknown default",
			mutate:   func(fc *FormatsConfig) { fc.Default = "xml" },
			wantPath: "formats.default",
		},
		{
			name:     "unknown json engine",
			mutate:   func(fc *FormatsConfig) { fc.JSON.Engine = "simd" },
			wantPath: "formats.json.engine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg.Formats)

			err := ValidateConfig(cfg)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			paths := make([]string, 0, len(verrs))
			for _, e := range verrs {
				paths = append(paths, e.Path)
			}
			assert.Contains(t, paths, tt.wantPath)
		})
	}
}

func TestValidateConfig_Sections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		want   string
	}{
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, want: "server.port"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, want: "server.port"},
		{name: "negative body size", mutate: func(c *Config) { c.Server.MaxRequestBodySize = -1 }, want: "server.maxRequestBodySize"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, want: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, want: "logging.format"},
		{name: "sampling above one", mutate: func(c *Config) { c.Tracing.SamplingRate = 1.5 }, want: "tracing.samplingRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())

	single := ValidationErrors{{Path: "formats", Message: "bad"}}
	assert.Equal(t, "formats: bad", single.Error())

	multi := ValidationErrors{
		{Path: "a", Message: "one"},
		{Message: "two"},
	}
	assert.Contains(t, multi.Error(), "2 validation errors")
	assert.Contains(t, multi.Error(), "1. a: one")
	assert.Contains(t, multi.Error(), "2. two")
}

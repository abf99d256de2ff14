package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatsConfig_EnabledFormats(t *testing.T) {
	tests := []struct {
		name string
		fc   FormatsConfig
		want []string
	}{
		{name: "defaults", fc: DefaultFormatsConfig(), want: []string{FormatCBOR, FormatJSON}},
		{name: "json only", fc: FormatsConfig{JSON: JSONFormatConfig{Enabled: true}}, want: []string{FormatJSON}},
		{name: "cbor only", fc: FormatsConfig{CBOR: CBORFormatConfig{Enabled: true}}, want: []string{FormatCBOR}},
		{name: "none", fc: FormatsConfig{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fc.EnabledFormats())
		})
	}
}

func TestFormatsConfig_IsEnabled(t *testing.T) {
	fc := FormatsConfig{JSON: JSONFormatConfig{Enabled: true}}

	assert.True(t, fc.IsEnabled(FormatJSON))
	assert.False(t, fc.IsEnabled(FormatCBOR))
	assert.False(t, fc.IsEnabled("xml"))
}

func TestJSONFormatConfig_JSONEngine(t *testing.T) {
	assert.Equal(t, EngineStandard, JSONFormatConfig{}.JSONEngine())
	assert.Equal(t, EngineAccelerated, JSONFormatConfig{Engine: EngineAccelerated}.JSONEngine())
}

func TestFormatToContentType(t *testing.T) {
	assert.Equal(t, ContentTypeJSON, FormatToContentType(FormatJSON))
	assert.Equal(t, ContentTypeCBOR, FormatToContentType(FormatCBOR))
	assert.Equal(t, "text/plain", FormatToContentType("text/plain"))
}

func TestDuration_YAML(t *testing.T) {
	var out struct {
		Timeout Duration `yaml:"timeout"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 1m30s"), &out))
	assert.Equal(t, 90*time.Second, out.Timeout.Duration())

	data, err := yaml.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1m30s")
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"250ms"`)))
	assert.Equal(t, 250*time.Millisecond, d.Duration())

	require.NoError(t, d.UnmarshalJSON([]byte(`null`)))
	assert.Zero(t, d.Duration())

	assert.Error(t, d.UnmarshalJSON([]byte(`"later"`)))

	out, err := Duration(2 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(out))
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, ":8080", DefaultServerConfig().Addr())
	assert.Equal(t, "127.0.0.1:9000", ServerConfig{Address: "127.0.0.1", Port: 9000}.Addr())
}

package encoding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
)

func init() {
	registerEngine(config.FormatJSON, config.EngineStandard, func(cfg config.FormatsConfig) (Codec, error) {
		return NewJSONCodec(&cfg.JSON), nil
	})
}

// errTrailingData reports bytes after the first JSON value.
var errTrailingData = errors.New("unexpected data after top-level value")

// jsonCodec implements Codec with encoding/json.
type jsonCodec struct {
	cfg *config.JSONFormatConfig
}

// NewJSONCodec creates a new JSON codec backed by encoding/json.
func NewJSONCodec(cfg *config.JSONFormatConfig) Codec {
	if cfg == nil {
		cfg = &config.JSONFormatConfig{}
	}
	return &jsonCodec{cfg: cfg}
}

// Encode encodes the value to JSON bytes.
func (c *jsonCodec) Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)

	if c.cfg.PrettyPrint {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}

	// Remove trailing newline added by encoder
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Decode decodes a single JSON value into v. Numbers decoded into
// interface values keep their precision as json.Number.
func (c *jsonCodec) Decode(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, ErrEmptyPayload)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, errTrailingData)
	}

	return nil
}

// ContentType returns the JSON content type.
func (c *jsonCodec) ContentType() string {
	return config.ContentTypeJSON
}

// Engine returns the engine name.
func (c *jsonCodec) Engine() string {
	return config.EngineStandard
}

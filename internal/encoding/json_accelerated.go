//go:build !noaccelerated

package encoding

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
)

func init() {
	registerEngine(config.FormatJSON, config.EngineAccelerated, func(cfg config.FormatsConfig) (Codec, error) {
		return NewAcceleratedJSONCodec(&cfg.JSON), nil
	})
}

// acceleratedJSONCodec implements Codec with github.com/goccy/go-json.
type acceleratedJSONCodec struct {
	cfg *config.JSONFormatConfig
}

// NewAcceleratedJSONCodec creates a JSON codec backed by goccy/go-json.
// It produces the same wire format as the standard engine.
func NewAcceleratedJSONCodec(cfg *config.JSONFormatConfig) Codec {
	if cfg == nil {
		cfg = &config.JSONFormatConfig{}
	}
	return &acceleratedJSONCodec{cfg: cfg}
}

// Encode encodes the value to JSON bytes.
func (c *acceleratedJSONCodec) Encode(v interface{}) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.cfg.PrettyPrint {
		data, err = gojson.MarshalIndent(v, "", "  ")
	} else {
		data, err = gojson.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}
	return data, nil
}

// Decode decodes a single JSON value into v. Trailing data is rejected.
func (c *acceleratedJSONCodec) Decode(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, ErrEmptyPayload)
	}
	if err := gojson.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}
	return nil
}

// ContentType returns the JSON content type.
func (c *acceleratedJSONCodec) ContentType() string {
	return config.ContentTypeJSON
}

// Engine returns the engine name.
func (c *acceleratedJSONCodec) Engine() string {
	return config.EngineAccelerated
}

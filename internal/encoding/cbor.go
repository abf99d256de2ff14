//go:build !nocbor

package encoding

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
)

func init() {
	registerEngine(config.FormatCBOR, config.EngineStandard, func(cfg config.FormatsConfig) (Codec, error) {
		return NewCBORCodec(&cfg.CBOR)
	})
}

// cborCodec implements Codec with github.com/fxamacker/cbor/v2.
type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBORCodec creates a new CBOR codec. Struct fields use the cbor tag and
// fall back to the json tag, so payload types serve both formats.
func NewCBORCodec(cfg *config.CBORFormatConfig) (Codec, error) {
	encOpts := cbor.EncOptions{}
	if cfg != nil && cfg.Canonical {
		encOpts = cbor.CoreDetEncOptions()
	}

	enc, err := encOpts.EncMode()
	if err != nil {
		return nil, fmt.Errorf("cbor encode mode: %w", err)
	}

	// Maps decoded into interface values get string keys, matching JSON.
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("cbor decode mode: %w", err)
	}

	return &cborCodec{enc: enc, dec: dec}, nil
}

// Encode encodes the value to CBOR bytes.
func (c *cborCodec) Encode(v interface{}) ([]byte, error) {
	data, err := c.enc.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}
	return data, nil
}

// Decode decodes a single CBOR data item into v. Trailing data is rejected.
func (c *cborCodec) Decode(data []byte, v interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, ErrEmptyPayload)
	}
	if err := c.dec.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}
	return nil
}

// ContentType returns the CBOR content type.
func (c *cborCodec) ContentType() string {
	return config.ContentTypeCBOR
}

// Engine returns the engine name.
func (c *cborCodec) Engine() string {
	return config.EngineStandard
}

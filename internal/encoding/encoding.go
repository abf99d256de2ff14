// Package encoding provides encoding/decoding capabilities for negotiated formats.
package encoding

import (
	"errors"
)

// Common encoding errors.
var (
	// ErrEncodingFailed indicates that encoding failed.
	ErrEncodingFailed = errors.New("encoding failed")

	// ErrDecodingFailed indicates that decoding failed.
	ErrDecodingFailed = errors.New("decoding failed")

	// ErrEmptyPayload indicates that there was nothing to decode.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrNotAcceptable indicates that no registered format satisfies the
	// Accept header.
	ErrNotAcceptable = errors.New("no acceptable representation")
)

// Registry construction errors.
var (
	// ErrNoFormats indicates that no format is enabled.
	ErrNoFormats = errors.New("no formats enabled")

	// ErrDefaultNotEnabled indicates that the default format is not enabled.
	ErrDefaultNotEnabled = errors.New("default format is not enabled")

	// ErrUnknownFormat indicates that the default names no known format.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrEngineUnavailable indicates that the requested engine is unknown
	// or was not compiled into the binary.
	ErrEngineUnavailable = errors.New("engine unavailable")

	// ErrDuplicateFormat indicates that two codecs claim the same media type.
	ErrDuplicateFormat = errors.New("duplicate format")
)

// Encoder encodes data to bytes.
type Encoder interface {
	// Encode encodes the value to bytes.
	Encode(v interface{}) ([]byte, error)

	// ContentType returns the canonical content type for this encoder.
	ContentType() string
}

// Decoder decodes bytes to data.
type Decoder interface {
	// Decode decodes the data into the value, which must be a pointer.
	Decode(data []byte, v interface{}) error
}

// Codec combines Encoder and Decoder for one canonical media type.
//
// Values handed to a codec describe their own structure through Go
// reflection and struct tags. A type that needs a custom representation
// implements json.Marshaler/json.Unmarshaler or cbor.Marshaler/cbor.Unmarshaler.
type Codec interface {
	Encoder
	Decoder

	// Engine returns the name of the implementation behind the codec.
	Engine() string
}

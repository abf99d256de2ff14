package encoding

import (
	"errors"
)

// person is the payload shape used across codec tests.
type person struct {
	Name string `json:"name"`
	Age  int    `json:"age,omitempty"`
}

// stubCodec is a codec for an arbitrary media type.
type stubCodec struct {
	contentType string
	encodeErr   error
}

func (s *stubCodec) Encode(v interface{}) ([]byte, error) {
	if s.encodeErr != nil {
		return nil, s.encodeErr
	}
	return []byte("stub"), nil
}

func (s *stubCodec) Decode(data []byte, v interface{}) error {
	if len(data) == 0 {
		return ErrEmptyPayload
	}
	return errors.New("stub codec cannot decode")
}

func (s *stubCodec) ContentType() string {
	return s.contentType
}

func (s *stubCodec) Engine() string {
	return "stub"
}

package negotiate

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vyrodovalexey/avanegotiate/internal/encoding"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "unsupported", err: fmt.Errorf("%w: text/plain", ErrUnsupportedMediaType), want: http.StatusUnsupportedMediaType},
		{name: "bad body", err: fmt.Errorf("%w: %w", ErrBadRequestBody, encoding.ErrDecodingFailed), want: http.StatusBadRequest},
		{name: "not acceptable", err: encoding.ErrNotAcceptable, want: http.StatusNotAcceptable},
		{name: "too large", err: &http.MaxBytesError{Limit: 4}, want: http.StatusRequestEntityTooLarge},
		{name: "encode failed", err: ErrEncodeFailed, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

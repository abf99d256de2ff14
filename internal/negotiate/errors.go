package negotiate

import (
	"errors"
	"net/http"

	"github.com/vyrodovalexey/avanegotiate/internal/encoding"
)

// Pipeline errors.
var (
	// ErrUnsupportedMediaType indicates that the request Content-Type names
	// no registered format.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrBadRequestBody indicates that the request body is malformed for
	// its declared format.
	ErrBadRequestBody = errors.New("malformed request body")

	// ErrNotAcceptable indicates that no registered format satisfies the
	// Accept header.
	ErrNotAcceptable = encoding.ErrNotAcceptable

	// ErrEncodeFailed indicates that the response value could not be encoded.
	ErrEncodeFailed = errors.New("failed to encode response")
)

// Plain-text bodies written by the gin binding.
const (
	MsgInvalidContentType = "Invalid content type on request"
	MsgMalformedBody      = "Malformed request body"
	MsgBodyTooLarge       = "Request body too large"
	MsgSerializeFailed    = "Failed to serialize response"
	MsgMisconfigured      = "Misconfigured service layer"
)

// StatusCode maps a pipeline error to an HTTP status code.
func StatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrBadRequestBody):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotAcceptable):
		return http.StatusNotAcceptable
	default:
		return http.StatusInternalServerError
	}
}

package negotiate

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vyrodovalexey/avanegotiate/internal/encoding"
)

// Gin context keys.
const (
	// PipelineKey holds the *Pipeline installed by Middleware.
	PipelineKey = "negotiate-pipeline"
	// CodecKey holds the response codec negotiated by Middleware.
	CodecKey = "negotiate-codec"
	// ResponseKey holds the payload registered by Respond.
	ResponseKey = "negotiate-response"
)

// pendingResponse is a payload waiting to be encoded by Middleware.
type pendingResponse struct {
	status int
	value  interface{}
}

// Middleware negotiates the response codec from the Accept header before the
// handler runs and aborts with 406 when nothing is acceptable. After the
// handler, a payload registered with Respond is encoded with that codec.
func Middleware(p *Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		codec, err := p.Negotiate(c.GetHeader(HeaderAccept))
		if err != nil {
			_ = c.Error(err)
			abortWithMessage(c, http.StatusNotAcceptable, MsgInvalidContentType)
			return
		}

		c.Set(PipelineKey, p)
		c.Set(CodecKey, codec)

		c.Next()

		value, ok := c.Get(ResponseKey)
		if !ok || c.Writer.Written() {
			return
		}
		pending, ok := value.(*pendingResponse)
		if !ok {
			return
		}

		encoded, err := p.EncodeWith(c.Request.Context(), codec, pending.value)
		if err != nil {
			_ = c.Error(err)
			abortWithMessage(c, http.StatusInternalServerError, MsgSerializeFailed)
			return
		}

		encoded.Apply(c.Writer.Header())
		c.Status(pending.status)
		_, _ = c.Writer.Write(encoded.Body)
	}
}

// Bind decodes the request body into v using the codec named by the
// Content-Type header. On failure it aborts the request with the matching
// status and returns the error; the handler should return immediately.
func Bind(c *gin.Context, v interface{}) error {
	p, ok := pipelineFrom(c)
	if !ok {
		abortWithMessage(c, http.StatusUnsupportedMediaType, MsgMisconfigured)
		return ErrUnsupportedMediaType
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		_ = c.Error(err)
		status := StatusCode(err)
		if status != http.StatusRequestEntityTooLarge {
			status = http.StatusBadRequest
		}
		abortWithMessage(c, status, messageFor(status))
		return err
	}

	if _, err := p.Decode(c.Request.Context(), c.GetHeader(HeaderContentType), body, v); err != nil {
		_ = c.Error(err)
		status := StatusCode(err)
		abortWithMessage(c, status, messageFor(status))
		return err
	}

	return nil
}

// Respond registers v to be encoded with the negotiated codec once the
// handler returns. Without Middleware there is no codec and the request is
// answered with 415.
func Respond(c *gin.Context, status int, v interface{}) {
	if _, ok := CodecFromContext(c); !ok {
		abortWithMessage(c, http.StatusUnsupportedMediaType, MsgMisconfigured)
		return
	}
	c.Set(ResponseKey, &pendingResponse{status: status, value: v})
}

// CodecFromContext returns the codec negotiated for the response.
func CodecFromContext(c *gin.Context) (encoding.Codec, bool) {
	if value, exists := c.Get(CodecKey); exists {
		if codec, ok := value.(encoding.Codec); ok {
			return codec, true
		}
	}
	return nil, false
}

func pipelineFrom(c *gin.Context) (*Pipeline, bool) {
	if value, exists := c.Get(PipelineKey); exists {
		if p, ok := value.(*Pipeline); ok {
			return p, true
		}
	}
	return nil, false
}

func messageFor(status int) string {
	switch status {
	case http.StatusUnsupportedMediaType, http.StatusNotAcceptable:
		return MsgInvalidContentType
	case http.StatusRequestEntityTooLarge:
		return MsgBodyTooLarge
	case http.StatusBadRequest:
		return MsgMalformedBody
	default:
		return MsgSerializeFailed
	}
}

func abortWithMessage(c *gin.Context, status int, msg string) {
	c.Abort()
	c.Writer.Header().Del(HeaderContentLength)
	c.String(status, msg)
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vyrodovalexey/avanegotiate/internal/encoding"
	"github.com/vyrodovalexey/avanegotiate/internal/negotiate"
)

// FormatInfo describes one registered format.
type FormatInfo struct {
	ContentType string `json:"contentType"`
	Engine      string `json:"engine"`
	Default     bool   `json:"default"`
}

// FormatsResponse is the body of GET /v1/formats.
type FormatsResponse struct {
	Default  string       `json:"default"`
	Selected string       `json:"selected"`
	Formats  []FormatInfo `json:"formats"`
	Compiled []string     `json:"compiled"`
}

// handleEcho decodes the request body with the codec named by its
// Content-Type and answers with the same value in the negotiated format.
func handleEcho(c *gin.Context) {
	var payload interface{}
	if err := negotiate.Bind(c, &payload); err != nil {
		return
	}
	negotiate.Respond(c, http.StatusOK, normalizeNumbers(payload))
}

// handleFormats lists the registered formats.
func handleFormats(reg *encoding.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := FormatsResponse{
			Default:  reg.DefaultType(),
			Compiled: encoding.AvailableEngines(),
		}
		if codec, ok := negotiate.CodecFromContext(c); ok {
			resp.Selected = codec.ContentType()
		}
		for _, codec := range reg.Codecs() {
			resp.Formats = append(resp.Formats, FormatInfo{
				ContentType: codec.ContentType(),
				Engine:      codec.Engine(),
				Default:     codec.ContentType() == reg.DefaultType(),
			})
		}
		negotiate.Respond(c, http.StatusOK, resp)
	}
}

// handleHealth reports liveness.
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// normalizeNumbers replaces json.Number values with int64 or float64 so that
// numbers keep their numeric type when re-encoded as CBOR.
func normalizeNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]interface{}:
		for k, item := range t {
			t[k] = normalizeNumbers(item)
		}
		return t
	case []interface{}:
		for i, item := range t {
			t[i] = normalizeNumbers(item)
		}
		return t
	default:
		return v
	}
}

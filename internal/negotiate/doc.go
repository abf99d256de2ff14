// Package negotiate runs content negotiation for request and response
// payloads.
//
// The decode path resolves a codec from the Content-Type header and decodes
// the body with it. The encode path selects a codec from the Accept header,
// encodes the value and reports the Content-Type to set. Hosts drop any
// previously computed Content-Length when applying the result.
//
// # Gin Integration
//
//	router.Use(negotiate.Middleware(pipeline))
//	router.POST("/v1/echo", func(c *gin.Context) {
//	    var in Payload
//	    if err := negotiate.Bind(c, &in); err != nil {
//	        return
//	    }
//	    negotiate.Respond(c, http.StatusOK, in)
//	})
package negotiate

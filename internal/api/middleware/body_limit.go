package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deepgram-transcriber/internal/api/errors"
)

// MultipartSlack is added to an upload limit to cover the multipart framing
// around the file part
const MultipartSlack = 1 << 20

// BodyLimit caps the request body at maxBytes. Requests that announce a
// larger Content-Length are rejected before the body is read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			c.Header("Connection", "close")
			HandleError(c, &errors.APIError{
				Kind:    errors.KindPayloadTooLarge,
				Message: "Request body too large",
				Code:    "body_too_large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

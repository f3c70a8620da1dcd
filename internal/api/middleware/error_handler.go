package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"deepgram-transcriber/internal/api/errors"
)

// ErrorHandler recovers panics into a JSON APIError. Anything that is not
// already an APIError is logged and answered with a generic 500 so internal
// details never reach the client.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		var apiErr *errors.APIError
		if err, ok := recovered.(error); ok && stderrors.As(err, &apiErr) {
			resp := *apiErr
			resp.RequestID = requestID
			c.AbortWithStatusJSON(resp.HTTPStatus(), &resp)
			return
		}

		cause := fmt.Sprint(recovered)
		if err, ok := recovered.(error); ok {
			cause = err.Error()
		}
		logger.Error("Internal server error",
			"error", cause,
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		resp := errors.NewInternalError("Internal server error")
		resp.RequestID = requestID
		c.AbortWithStatusJSON(resp.HTTPStatus(), resp)
	})
}

// HandleError writes err as an APIError. Domain errors are mapped through
// errors.FromError; unmapped causes panic into ErrorHandler to be logged.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var apiErr *errors.APIError
	if !stderrors.As(err, &apiErr) {
		apiErr = errors.FromError(err)
		if apiErr.Kind == errors.KindInternal {
			panic(err)
		}
	}

	resp := *apiErr
	resp.RequestID = GetRequestID(c)
	c.AbortWithStatusJSON(resp.HTTPStatus(), &resp)
}

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// quietPaths are polled by probes and scrapers
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// StructuredLogging writes one slog record per request through gin's
// formatter hook. 5xx responses log at error level, 4xx at warn.
func StructuredLogging(logger *slog.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if quietPaths[param.Path] {
			return ""
		}

		requestID, _ := param.Keys[RequestIDKey].(string)

		level := slog.LevelInfo
		switch {
		case param.StatusCode >= http.StatusInternalServerError:
			level = slog.LevelError
		case param.StatusCode >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []any{
			"request_id", requestID,
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"client_ip", param.ClientIP,
			"body_size", param.BodySize,
		}
		if param.ErrorMessage != "" {
			attrs = append(attrs, "error", param.ErrorMessage)
		}

		logger.Log(param.Request.Context(), level, "HTTP Request", attrs...)
		return ""
	})
}

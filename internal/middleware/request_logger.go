package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kdattani/gradebook/internal/pkg/logger"
)

// RequestIDHeader carries the request identifier on both request and
// response.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key the identifier is stored under.
const requestIDKey = "requestID"

// RequestID assigns every request a unique identifier. A client-supplied
// identifier is kept; otherwise a fresh UUID is generated. The value is
// echoed back on the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger emits one structured log line per request after the
// handler chain completes.
func RequestLogger() gin.HandlerFunc {
	requestLog := logger.With("requests")

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		event := requestLog.Info()
		if c.Writer.Status() >= 500 {
			event = requestLog.Error()
		}

		event.
			Str("requestId", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIp", c.ClientIP()).
			Msg("Request completed")
	}
}

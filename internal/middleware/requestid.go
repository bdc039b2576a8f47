package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/momentumhq/momentum-backend/internal/logger"
)

// RequestID assigns each request a unique ID, stores it on the request
// context for structured logging, and echoes it back in the X-Request-ID
// response header. An incoming X-Request-ID is preserved.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		requestID := logger.RequestIDFromContext(ctx)

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"staff-roster.backend/pkg/logger"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestIDMiddleware generates a unique ID for each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		// logger.WithContext reads the id back from the request context
		c.Request = c.Request.WithContext(logger.WithContextRequestID(c.Request.Context(), id))

		c.Next()
	}
}

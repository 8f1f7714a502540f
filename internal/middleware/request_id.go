package middleware

import (
	"employee-directory/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID reuses the caller's X-Request-ID or mints one, then exposes it on
// the gin context, the request context and the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(contextutil.RequestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)

		c.Header(contextutil.RequestIDHeader, rid)
		c.Next()
	}
}

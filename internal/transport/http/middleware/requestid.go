package middleware

import (
	"github.com/BaseMax/travel-planner-graphql/internal/requestid"
	"github.com/gin-gonic/gin"
)

// RequestID injects a request id into the context and response header.
// An incoming X-Request-ID is preserved so ids correlate across services;
// otherwise a new one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}

		ctx := requestid.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestid.Header, id)
		c.Next()
	}
}

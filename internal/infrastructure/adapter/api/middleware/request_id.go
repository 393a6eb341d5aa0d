package middleware

import (
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/requestid"
	"github.com/gin-gonic/gin"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one, and
// stores it in the request context for the loggers
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if !requestid.Valid(id) {
			id = requestid.New()
		}

		c.Request = c.Request.WithContext(requestid.WithID(c.Request.Context(), id))
		c.Header(requestid.Header, id)

		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chickens/chatterbox/utils"
)

// RequestID injects a unique request id into the Gin context and response
// headers so access log lines can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(utils.ContextRequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

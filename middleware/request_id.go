package middleware

import (
	"restohours/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with an ID, echoes it in the response and
// stores a child logger under utils.LoggerKey for handlers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Set(utils.LoggerKey, utils.GetLogger().With(zap.String("requestID", requestID)))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

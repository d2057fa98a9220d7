package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	commonmw "github.com/OrangesCloud/wealist-advanced-go-pkg/middleware"

	"community-board-api/internal/metrics"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = commonmw.RequestIDKey
)

// Logger writes one structured line per request through the shared request logger,
// which also issues the X-Request-ID. Operational endpoints get an id but no log line.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	requestLog := commonmw.Logger(logger)

	return func(c *gin.Context) {
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			requestID := uuid.NewString()
			c.Set(RequestIDKey, requestID)
			c.Header(RequestIDHeader, requestID)
			c.Next()
			return
		}

		requestLog(c)
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/logger"
)

// Logger stores a request-scoped logger in the context and logs one line per
// completed request, at a level chosen by status code.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Set("logger", log.WithRequestID(GetRequestID(c)))

		c.Next()

		// Auth may have replaced the logger with a user-tagged child.
		requestLogger := GetLogger(c)

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if len(c.Request.URL.RawQuery) > 0 {
			fields["query"] = c.Request.URL.RawQuery
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		statusCode := c.Writer.Status()
		switch {
		case statusCode >= 500:
			requestLogger.Error("Request completed with server error", nil, fields)
		case statusCode >= 400:
			requestLogger.Warn("Request completed with client error", fields)
		default:
			requestLogger.Info("Request completed", fields)
		}
	}
}

// GetLogger retrieves the request logger from the Gin context, or nil.
func GetLogger(c *gin.Context) *logger.Logger {
	if value, exists := c.Get("logger"); exists {
		if l, ok := value.(*logger.Logger); ok {
			return l
		}
	}
	return nil
}

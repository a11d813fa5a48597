package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger replaces gin.Logger with one structured line per request.
// Public routes carry tokens in the path, so only the route template is logged.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []any{
			"method", c.Request.Method,
			"route", route,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		if c.Writer.Status() >= 500 {
			zap.S().Errorw("[http] request", fields...)
			return
		}
		zap.S().Infow("[http] request", fields...)
	}
}

// Recovery logs the panic and answers 500, like the gin default without the stack dump on stderr.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.S().Errorw("[http] recovered from panic", "panic", recovered, "route", c.FullPath())
		c.AbortWithStatus(500)
	})
}

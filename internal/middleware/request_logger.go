package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anshulj07/sciquel-test/internal/logger"
)

// quietPaths are health check and scrape endpoints that would flood the log.
var quietPaths = map[string]bool{
	"/metrics": true,
	"/live":    true,
	"/ready":   true,
}

// RequestLogger returns a Gin middleware that logs every request.
// It must run after RequestID so the record carries the request ID.
// 4xx responses are logged at WARN and 5xx at ERROR.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if quietPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}

		logger.GetLogger().Log(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.String("duration", time.Since(start).String()),
			slog.String("ip", c.ClientIP()),
		)
	}
}

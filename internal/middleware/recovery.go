package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anshulj07/sciquel-test/internal/domain"
	"github.com/anshulj07/sciquel-test/internal/logger"
)

// InvalidFormatRecovery recovers from panics raised by the downstream handler,
// logs them with the request ID and answers 400 with the generic invalid
// format message.
func InvalidFormatRecovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "Recovered from panic while handling request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": domain.MsgInvalidFormat})
	})
}

package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anshulj07/sciquel-test/internal/logger"
)

// RequestIDHeader carries the correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID tags every request with a correlation ID. A usable client ID is
// kept; anything else is replaced by a fresh UUID. The ID is echoed in the
// response and attached to the request context so log records carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id := c.GetHeader(RequestIDHeader)
		if !validRequestID(id) {
			if id != "" {
				logger.WarnContext(ctx, "Replacing unusable request ID",
					slog.Int("length", len(id)))
			}
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(logger.ContextWithRequestID(ctx, id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// validRequestID accepts short printable ASCII IDs only, so a client cannot
// smuggle control characters or oversized values into logs and headers.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

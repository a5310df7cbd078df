// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/anshulj07/sciquel-test/internal/metrics"
)

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests:
// request totals by method, route and status, a duration histogram, and the
// number of requests in flight. The /metrics route itself is not recorded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		// Unmatched routes share one label to keep cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), timer.Seconds())
	}
}

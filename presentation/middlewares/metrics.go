package middlewares

import (
	"time"

	"github.com/ecstazane/zane-crud2/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests and records their latency per route.
func MetricsMiddleware(m metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.IncCounter("http_requests_total", 1)
		m.RecordHistogram("http_request_duration_seconds", time.Since(start).Seconds())

		if c.Writer.Status() >= 500 {
			m.IncCounter("http_requests_errors_total", 1)
		}
	}
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"medstore/internal/metrics"
)

// Metrics records request count and latency for every handled request.
// The route template is used as the label, not the raw path, so UUIDs in
// the URL do not blow up label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
		).Observe(time.Since(start).Seconds())
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/common/metrics"
)

// Metrics records request counts and latency keyed by the matched route
// template, so /tasks/1 and /tasks/2 share one series.
func Metrics(m *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

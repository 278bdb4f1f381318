package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axoxia/shipping-quote/internal/metrics"
)

// Metrics records request counts and latency by matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.ReqTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.ReqDur.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

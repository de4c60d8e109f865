package middleware

import (
	"strconv"
	"time"

	"shorturl-analytics/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 记录请求耗时与数量，route 使用路由模板避免标签基数过大
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		metrics.RequestTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	}
}

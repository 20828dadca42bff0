package middleware

import (
	"time"

	"sandwich-storefront/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records every request by route template, not raw path.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

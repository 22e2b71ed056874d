package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/infrastructure/metrics"
)

// Metrics records request count, latency and in-flight requests labelled by
// route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := metrics.RequestStarted()

		c.Next()

		done(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

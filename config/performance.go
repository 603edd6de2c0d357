package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// PerformanceLogger logs every request with its latency. Anything slower
// than 200ms gets an extra line; every store operation rewrites a full
// bucket, so slow requests usually mean an oversized bucket.
func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > 200*time.Millisecond {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"stayhub-backend/observability"
)

// Logger emits one structured log line per request and feeds the HTTP
// metrics. Route pattern is preferred over the raw path so /hotels/42 and
// /hotels/7 share a label.
func Logger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()
		dur := time.Since(start)

		observability.ObserveHTTP(route, c.Request.Method, status, dur)

		l.Info().
			Str("route", route).
			Str("method", c.Request.Method).
			Int("status", status).
			Dur("duration", dur).
			Str("remote", c.ClientIP()).
			Str("ua", c.Request.UserAgent()).
			Msg("http_request")
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/lifecycle/internal/logging"
	"github.com/osa911/lifecycle/internal/utils"
)

// RequestLogger logs one line per request. The logger only writes these
// lines when LOG_REQUESTS=true.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}

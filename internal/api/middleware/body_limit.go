package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultBodyLimit bounds contact submissions. It is far above anything a
// person types into the form.
const DefaultBodyLimit int64 = 1 << 20

// BodyLimit caps how much of the request body later handlers can read.
// Reading past the cap fails with *http.MaxBytesError.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/osa911/lifecycle/internal/api/dto/common"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware creates a new rate limiting middleware with the given configuration
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)
	limit := strconv.FormatFloat(config.RPS, 'f', -1, 64)

	return func(c *gin.Context) {
		now := time.Now()
		if !limiter.AllowN(now, 1) {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(untilNextToken(limiter, now, config.RPS).Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests,
				"Rate limit exceeded. Please try again later.",
				nil,
			))
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.TokensAt(now))))
		c.Header("X-RateLimit-Reset", now.Add(untilNextToken(limiter, now, config.RPS)).UTC().Format(http.TimeFormat))

		c.Next()
	}
}

func untilNextToken(l *rate.Limiter, now time.Time, rps float64) time.Duration {
	tokens := l.TokensAt(now)
	if tokens >= 1 || rps <= 0 {
		return 0
	}
	return time.Duration((1 - tokens) / rps * float64(time.Second))
}

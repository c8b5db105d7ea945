package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/lifecycle/internal/api/constants"
	"github.com/osa911/lifecycle/internal/formsession"
)

// FormSession attaches the visitor's contact form controller to the request,
// creating one when the cookie is missing or stale, and refreshes the
// session cookie.
func FormSession(sessions *formsession.Registry, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(constants.CookieFormSession)

		id, ctrl := sessions.GetOrCreate(cookie)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(constants.CookieFormSession, id, int(ttl.Seconds()), constants.CookiePathRoot, "", secure, true)

		c.Set(constants.ContextKeyFormSession, ctrl)
		c.Next()
	}
}

// LookupFormSession attaches the visitor's controller only if the cookie
// names a live session. It never creates one.
func LookupFormSession(sessions *formsession.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(constants.CookieFormSession); err == nil {
			if ctrl, ok := sessions.Get(cookie); ok {
				c.Set(constants.ContextKeyFormSession, ctrl)
			}
		}
		c.Next()
	}
}

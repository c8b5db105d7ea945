package routes

import (
	"github.com/osa911/lifecycle/internal/api/handlers"
	"github.com/osa911/lifecycle/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the JSON contact endpoint
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	public := router.Group("/contact")
	{
		// Public endpoint with rate limiting (no auth required)
		public.POST("/submit",
			middleware.RateLimitMiddleware(m.ContactRate),
			middleware.BodyLimit(middleware.DefaultBodyLimit),
			m.Validation.ValidateContactRequest(),
			contact.Submit,
		)
	}
}

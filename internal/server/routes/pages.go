package routes

import (
	"net/http"

	"github.com/osa911/lifecycle/internal/api/middleware"
	"github.com/osa911/lifecycle/internal/site"

	"github.com/gin-gonic/gin"
)

// SetupPageRoutes configures the site pages, the page form and static assets
func SetupPageRoutes(router *gin.Engine, h *Handlers, m *Middleware) {
	router.StaticFS("/static", http.FS(site.Static()))

	router.GET("/", h.Pages.Home)
	router.GET("/about", h.Pages.About)
	router.GET("/pricing", h.Pages.Pricing)

	// Only a submission creates a form session; viewing the page or
	// dismissing reuses an existing one.
	lookup := middleware.LookupFormSession(m.Sessions)
	form := router.Group("/contact")
	{
		form.GET("", lookup, h.Pages.Contact)
		form.POST("",
			middleware.RateLimitMiddleware(m.ContactRate),
			middleware.BodyLimit(middleware.DefaultBodyLimit),
			m.Validation.ValidateContactRequest(),
			middleware.FormSession(m.Sessions, m.SessionTTL, m.SecureCookie),
			h.Contact.SubmitForm,
		)
		form.POST("/dismiss", lookup, h.Contact.Dismiss)
	}

	router.NoRoute(h.Pages.NotFound)
}

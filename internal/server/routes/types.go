package routes

import (
	"time"

	"github.com/osa911/lifecycle/internal/api/handlers"
	"github.com/osa911/lifecycle/internal/api/middleware"
	"github.com/osa911/lifecycle/internal/formsession"
	"github.com/osa911/lifecycle/internal/logging"
)

// Handlers contains all the route handlers
type Handlers struct {
	Pages   *handlers.PageHandler
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation   *middleware.ValidationMiddleware
	Sessions     *formsession.Registry
	SessionTTL   time.Duration
	SecureCookie bool
	ContactRate  middleware.RateLimitConfig
}

// Global configures the middleware applied to every route
type Global struct {
	Logger     *logging.Logger
	CORS       middleware.CORSConfig
	Production bool
}

package routes

import (
	"net/http"
	"strings"

	"github.com/osa911/lifecycle/internal/api/middleware"
	basemw "github.com/osa911/lifecycle/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	// Create base API v1 group
	v1 := router.Group("/api/v1")

	SetupHealthRoutes(router, h.Health)
	SetupPageRoutes(router, h, m)
	SetupContactRoutes(v1, h.Contact, m)
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, serviceName string, g Global) {
	router.Use(basemw.Recovery(g.Logger))
	router.Use(otelgin.Middleware(serviceName, otelgin.WithFilter(func(r *http.Request) bool {
		return r.URL.Path != "/health" && !strings.HasPrefix(r.URL.Path, "/static/")
	})))
	router.Use(basemw.RequestID())
	router.Use(middleware.RequestLogger(g.Logger))
	router.Use(middleware.CORS(g.CORS))
	router.Use(middleware.SecurityHeaders(g.Production))
}


package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/osa911/lifecycle/internal/api/constants"
	"github.com/osa911/lifecycle/internal/contact"
	"github.com/osa911/lifecycle/internal/logging"
	"github.com/osa911/lifecycle/internal/seo"
	"github.com/osa911/lifecycle/internal/site/components"
	"github.com/osa911/lifecycle/internal/site/pages"
)

// PageHandler renders the marketing pages.
type PageHandler struct {
	siteURL string
}

func NewPageHandler(siteURL string) *PageHandler {
	return &PageHandler{siteURL: siteURL}
}

func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, func(sink seo.MetadataSink) g.Node {
		return pages.Home(sink, h.siteURL)
	})
}

func (h *PageHandler) About(c *gin.Context) {
	h.render(c, http.StatusOK, func(sink seo.MetadataSink) g.Node {
		return pages.About(sink, h.siteURL)
	})
}

// Pricing expands the FAQ answer named by ?faq=N, if any.
func (h *PageHandler) Pricing(c *gin.Context) {
	openFAQ := pages.NoFAQOpen
	if n, err := strconv.Atoi(c.Query("faq")); err == nil && n >= 0 && n < len(pages.FAQs) {
		openFAQ = n
	}

	h.render(c, http.StatusOK, func(sink seo.MetadataSink) g.Node {
		return pages.Pricing(sink, h.siteURL, openFAQ)
	})
}

// Contact renders the visitor's form as its controller currently stands, or
// an empty idle form for a visitor who has not submitted yet.
func (h *PageHandler) Contact(c *gin.Context) {
	var snap contact.Snapshot
	if ctrl, ok := formController(c); ok {
		snap = ctrl.Snapshot()
	}

	c.Header("Cache-Control", "no-store")
	h.render(c, http.StatusOK, func(sink seo.MetadataSink) g.Node {
		return pages.Contact(sink, h.siteURL, snap)
	})
}

func (h *PageHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, func(sink seo.MetadataSink) g.Node {
		return pages.NotFound(sink)
	})
}

// render builds the page content first so its metadata lands in the head.
func (h *PageHandler) render(c *gin.Context, status int, page func(seo.MetadataSink) g.Node) {
	doc := seo.Shell(h.siteURL)
	content := page(doc)

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := components.Layout(doc, c.Request.URL.Path, content).Render(c.Writer); err != nil {
		logging.GetGlobalLogger().Error("Failed to render %s: %v", c.Request.URL.Path, err)
	}
}

func formController(c *gin.Context) (*contact.Controller, bool) {
	v, exists := c.Get(constants.ContextKeyFormSession)
	if !exists {
		return nil, false
	}
	ctrl, ok := v.(*contact.Controller)
	return ctrl, ok
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/lifecycle/internal/airtable"
	"github.com/osa911/lifecycle/internal/api/constants"
	"github.com/osa911/lifecycle/internal/contact"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopStore struct{}

func (nopStore) CreateRecord(context.Context, airtable.Credentials, airtable.Fields) error {
	return nil
}

func TestPricing_FAQQuery(t *testing.T) {
	h := NewPageHandler("https://lifecycle.test")
	router := gin.New()
	router.GET("/pricing", h.Pricing)

	tests := []struct {
		query    string
		wantOpen int
	}{
		{"", 0},
		{"?faq=2", 1},
		{"?faq=99", 0},
		{"?faq=-1", 0},
		{"?faq=abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing"+tt.query, nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantOpen, strings.Count(w.Body.String(), `class="faq-answer"`))
		})
	}
}

func TestContactPage_WithoutSessionRendersEmptyForm(t *testing.T) {
	h := NewPageHandler("")
	router := gin.New()
	router.GET("/contact", h.Contact)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Send message")
	assert.NotContains(t, body, "Thank You!")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestDismiss(t *testing.T) {
	ctrl := contact.NewController(contact.SubmissionConfig{Token: "t", BaseID: "b"}, nopStore{})
	t.Cleanup(ctrl.Close)
	ctrl.SetFields(contact.FormFields{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	require.NoError(t, ctrl.Submit(context.Background()))
	require.Equal(t, contact.StateSuccess, ctrl.State())

	h := NewContactHandler(nil, nil)
	router := gin.New()
	router.POST("/contact/dismiss", func(c *gin.Context) {
		c.Set(constants.ContextKeyFormSession, ctrl)
		c.Next()
	}, h.Dismiss)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact/dismiss", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contact", w.Header().Get("Location"))
	assert.Equal(t, contact.StateIdle, ctrl.State())
}

func TestHealth_ReportsSessions(t *testing.T) {
	router := gin.New()
	router.GET("/health", NewHealthHandler(fixedCount(3)).Check)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"form_sessions":3`)
}

type fixedCount int

func (n fixedCount) Len() int { return int(n) }

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/lifecycle/internal/api/constants"
	"github.com/osa911/lifecycle/internal/api/dto/common"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"x-real-ip wins", map[string]string{"X-Real-IP": "1.1.1.1", "X-Forwarded-For": "2.2.2.2"}, "1.1.1.1"},
		{"first forwarded-for", map[string]string{"X-Forwarded-For": "3.3.3.3, 10.0.0.1"}, "3.3.3.3"},
		{"remote addr", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, GetRealIP(c))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", nil)

	HandleAPIError(c, errors.New("boom"), http.StatusBadGateway, common.ErrCodeUpstream, "Failed to submit form")

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(common.ErrCodeUpstream), resp.Error.Code)
	assert.Equal(t, "Failed to submit form", resp.Error.Message)
	assert.Equal(t, "boom", resp.Error.Details)
}

func TestHandleAPIError_RequestID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", nil)
	c.Set(constants.ContextKeyRequestID, "req-42")

	HandleAPIError(c, nil, http.StatusBadRequest, common.ErrCodeBadRequest, "reCAPTCHA verification failed")

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "req-42", resp.Error.RequestID)
	assert.Nil(t, resp.Error.Details)
}

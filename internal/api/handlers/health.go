package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/lifecycle/internal/utils"
	"github.com/osa911/lifecycle/internal/version"
)

// SessionCounter reports how many form sessions are live.
type SessionCounter interface {
	Len() int
}

type HealthHandler struct {
	sessions SessionCounter
}

func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

type healthResponse struct {
	Status       string            `json:"status"`
	Build        version.BuildInfo `json:"build"`
	FormSessions int               `json:"form_sessions"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, healthResponse{
		Status:       "ok",
		Build:        version.GetBuildInfo(),
		FormSessions: h.sessions.Len(),
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/lifecycle/internal/api/constants"
	"github.com/osa911/lifecycle/internal/api/dto/common"
	contactdto "github.com/osa911/lifecycle/internal/api/dto/v1/contact"
	"github.com/osa911/lifecycle/internal/contact"
	"github.com/osa911/lifecycle/internal/service"
	"github.com/osa911/lifecycle/internal/utils"
)

const msgSubmitted = "Message sent successfully. We'll get back to you shortly."

type ContactHandler struct {
	newController    func() *contact.Controller
	recaptchaService *service.RecaptchaService
}

// NewContactHandler takes the factory used for one-shot API submissions.
// Page submissions use the visitor's session controller instead.
func NewContactHandler(newController func() *contact.Controller, recaptcha *service.RecaptchaService) *ContactHandler {
	return &ContactHandler{
		newController:    newController,
		recaptchaService: recaptcha,
	}
}

// SubmitForm handles the page form post and redirects back to the page,
// which renders the outcome.
func (h *ContactHandler) SubmitForm(c *gin.Context) {
	ctrl, ok := formController(c)
	req, reqOK := contactRequest(c)
	if !ok || !reqOK {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx := service.WithMessageInfo(c.Request.Context(), messageInfo(c, "website"))
	// ErrSubmitInProgress means an earlier post is still running; the page
	// shows it as sending and this post's input is dropped.
	_ = ctrl.SubmitFields(ctx, req.Fields())

	c.Redirect(http.StatusSeeOther, "/contact")
}

// Dismiss leaves the success panel for an empty form.
func (h *ContactHandler) Dismiss(c *gin.Context) {
	if ctrl, ok := formController(c); ok {
		ctrl.DismissSuccess()
	}
	c.Redirect(http.StatusSeeOther, "/contact")
}

// Submit is the JSON API. Each call runs one fresh controller to a terminal
// state and reports it.
func (h *ContactHandler) Submit(c *gin.Context) {
	req, ok := contactRequest(c)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}

	if h.recaptchaService != nil && h.recaptchaService.Enabled() {
		if err := h.recaptchaService.VerifyToken(c.Request.Context(), req.RecaptchaToken, utils.GetRealIP(c)); err != nil {
			utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeBadRequest, "reCAPTCHA verification failed")
			return
		}
	}

	ctrl := h.newController()
	defer ctrl.Close()

	ctx := service.WithMessageInfo(c.Request.Context(), messageInfo(c, "api"))
	if err := ctrl.SubmitFields(ctx, req.Fields()); err != nil {
		utils.HandleAPIError(c, err, http.StatusConflict, common.ErrCodeConflict, "Submission already in progress")
		return
	}

	snap := ctrl.Snapshot()
	switch {
	case snap.State == contact.StateSuccess:
		utils.HandleSuccess(c, contactdto.ContactResponse{
			Message: msgSubmitted,
			State:   snap.State,
			Success: true,
		})
	case contact.IsValidationMessage(snap.ErrorMessage):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, snap.ErrorMessage, nil))
	case snap.ErrorMessage == contact.MsgMissingCredentials:
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(common.ErrCodeInternalServer, snap.ErrorMessage, nil))
	default:
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(common.ErrCodeUpstream, snap.ErrorMessage, nil))
	}
}

func contactRequest(c *gin.Context) (*contactdto.ContactRequest, bool) {
	v, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		return nil, false
	}
	req, ok := v.(*contactdto.ContactRequest)
	return req, ok
}

func messageInfo(c *gin.Context, source string) *service.ContactMessageInfo {
	return &service.ContactMessageInfo{
		IPAddress: utils.GetRealIP(c),
		UserAgent: c.Request.UserAgent(),
		Source:    source,
	}
}

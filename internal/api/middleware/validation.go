package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/osa911/lifecycle/internal/api/constants"
	"github.com/osa911/lifecycle/internal/api/dto/common"
	"github.com/osa911/lifecycle/internal/api/dto/v1/contact"
	"github.com/osa911/lifecycle/internal/api/validation"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateContactRequest binds a contact submission from a JSON or form body
// and stores it under constants.ContextKeyContact.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest

		if err := c.ShouldBind(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.NewErrorResponse(
					common.ErrCodeTooLarge,
					"Request body too large",
					nil,
				))
				return
			}

			if c.ContentType() != binding.MIMEJSON {
				c.String(http.StatusBadRequest, "Invalid form submission")
				c.Abort()
				return
			}

			c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(
				common.ErrCodeValidation,
				"Invalid request body",
				validation.FormatValidationError(err),
			))
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

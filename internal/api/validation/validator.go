package validation

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/osa911/lifecycle/internal/api/dto/common"
	"github.com/osa911/lifecycle/internal/contact"
)

// RegisterValidators installs the contact form rules on gin's binding
// validator so request DTOs can use them in binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return contact.RegisterValidations(v)
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []common.ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make([]common.ValidationError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, common.ValidationError{
			Field:   e.Field(),
			Message: messageFor(e),
		})
	}
	return out
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case contact.TagContactEmail:
		return contact.MsgInvalidEmail
	case contact.TagNotBlank, "required":
		return contact.MsgMissingFields
	default:
		return fmt.Sprintf("failed %q validation", e.Tag())
	}
}

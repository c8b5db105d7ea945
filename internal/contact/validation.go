package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation tags registered by RegisterValidations.
const (
	TagContactEmail = "contactemail"
	TagNotBlank     = "notblank"
)

// User-facing validation messages.
const (
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgMissingFields = "Please fill in all fields."
)

// emailPattern accepts local@domain.tld: no whitespace, no extra @, at least
// one dot after the @. The negated class mirrors the browser's notion of
// whitespace, which is wider than RE2's \s.
var emailPattern = regexp.MustCompile(`^[^\s\x{0B}\p{Z}\x{FEFF}@]+@[^\s\x{0B}\p{Z}\x{FEFF}@]+\.[^\s\x{0B}\p{Z}\x{FEFF}@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidations installs the contact form rules on v.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation(TagContactEmail, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// IsValidEmail reports whether email has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidationError is a local input problem with a fixed user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the email shape first, then that every field has
// non-whitespace content.
func Validate(f FormFields) error {
	if err := validate.Var(f.Email, TagContactEmail); err != nil {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	if err := validate.Struct(f); err != nil {
		return &ValidationError{Message: MsgMissingFields}
	}
	return nil
}

// IsValidationMessage reports whether msg is one of the local validation
// messages rather than a store failure.
func IsValidationMessage(msg string) bool {
	return msg == MsgInvalidEmail || msg == MsgMissingFields
}

package contact

import (
	contactform "github.com/osa911/lifecycle/internal/contact"
)

// ContactRequest represents a contact form submission. Content rules (email
// shape, blank fields) are applied by the form controller so the API reports
// the same messages as the page. Field length is not limited here; the body
// size is bounded by middleware.BodyLimit.
type ContactRequest struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	Message        string `json:"message" form:"message"`
	RecaptchaToken string `json:"recaptcha_token" form:"recaptcha_token" binding:"omitempty,notblank,max=4096"`
}

// Fields converts the request into controller input.
func (r *ContactRequest) Fields() contactform.FormFields {
	return contactform.FormFields{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Message string            `json:"message"`
	State   contactform.State `json:"state"`
	Success bool              `json:"success"`
}

package common

// APIResponse is the standard wrapper for all API responses
type APIResponse struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse carries a machine code and the message shown to the visitor.
type ErrorResponse struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// ValidationError names the offending field of a rejected body.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorCode string

// Error codes returned by the contact API
const (
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeInternalServer  ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrCodeBadRequest      ErrorCode = "BAD_REQUEST"
	ErrCodeTooManyRequests ErrorCode = "TOO_MANY_REQUESTS"
	ErrCodeConflict        ErrorCode = "CONFLICT"
	ErrCodeUpstream        ErrorCode = "UPSTREAM_ERROR"
	ErrCodeTooLarge        ErrorCode = "PAYLOAD_TOO_LARGE"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(code ErrorCode, message string, details interface{}) APIResponse {
	return APIResponse{
		Success: false,
		Error: &ErrorResponse{
			Code:    string(code),
			Message: message,
			Details: details,
		},
	}
}

// WithRequestID stamps the error body with the request id, if it has one.
func (r APIResponse) WithRequestID(id string) APIResponse {
	if r.Error != nil && id != "" {
		e := *r.Error
		e.RequestID = id
		r.Error = &e
	}
	return r
}

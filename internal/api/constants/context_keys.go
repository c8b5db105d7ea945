package constants

// Context keys for validated requests
const (
	// Contact context keys
	ContextKeyContact     = "contact"
	ContextKeyFormSession = "formSession"

	// Request tracing
	ContextKeyRequestID = "RequestID"
)

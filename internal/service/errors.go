package service

import "errors"

// Sentinel errors for service layer
var (
	ErrNotConfigured = errors.New("service not configured")
	ErrVerification  = errors.New("verification failed")
)

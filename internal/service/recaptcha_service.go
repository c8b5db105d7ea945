package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultRecaptchaVerifyURL is Google's siteverify endpoint.
const DefaultRecaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaService handles reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	minScore  float64
	verifyURL string
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service
func NewRecaptchaService(secretKey string, minScore float64) *RecaptchaService {
	return &RecaptchaService{
		secretKey: secretKey,
		minScore:  minScore,
		verifyURL: DefaultRecaptchaVerifyURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a secret key is configured.
func (s *RecaptchaService) Enabled() bool {
	return s.secretKey != ""
}

// recaptchaResponse represents the response from Google's reCAPTCHA API
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// VerifyToken verifies a reCAPTCHA v3 token against the configured minimum score
func (s *RecaptchaService) VerifyToken(ctx context.Context, token, remoteIP string) error {
	if !s.Enabled() {
		return fmt.Errorf("reCAPTCHA secret key: %w", ErrNotConfigured)
	}

	if token == "" {
		return fmt.Errorf("%w: reCAPTCHA token is required", ErrVerification)
	}

	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)
	if remoteIP != "" {
		data.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create reCAPTCHA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify reCAPTCHA: %w", err)
	}
	defer resp.Body.Close()

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse reCAPTCHA response: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("%w: %v", ErrVerification, result.ErrorCodes)
	}

	// Check score (for reCAPTCHA v3)
	if result.Score < s.minScore {
		return fmt.Errorf("%w: score too low: %.2f < %.2f", ErrVerification, result.Score, s.minScore)
	}

	return nil
}

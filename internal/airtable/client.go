// Package airtable writes contact submissions to an Airtable table.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public Airtable REST endpoint.
	DefaultBaseURL = "https://api.airtable.com/v0"

	// StatusNew is written to every record created from the contact form.
	StatusNew = "New"

	// FallbackErrorMessage is reported when a rejected request carries no message.
	FallbackErrorMessage = "Failed to submit form"
)

// Credentials identify the table a record is written to.
type Credentials struct {
	Token     string
	BaseID    string
	TableName string
}

// Fields is one contact-form row as Airtable expects it.
type Fields struct {
	Name    string `json:"Name"`
	Email   string `json:"Email"`
	Message string `json:"Message"`
	Status  string `json:"Status"`
}

type record struct {
	Fields Fields `json:"fields"`
}

type createRequest struct {
	Records []record `json:"records"`
}

type errorBody struct {
	Error json.RawMessage `json:"error"`
}

type errorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RemoteError is returned when Airtable answers with a non-2xx status.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return FallbackErrorMessage
	}
	return e.Message
}

// TransportError is a request that never got an Airtable answer. Its text
// is the underlying network error without the request URL, which names the
// base and table.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return &TransportError{Err: ue.Err}
	}
	return &TransportError{Err: err}
}

// Client talks to the Airtable records API.
type Client struct {
	baseURL string
	client  *http.Client
	tracer  trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewClient creates a client with the given request timeout. A zero timeout
// leaves requests bounded only by the caller's context.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		tracer: otel.Tracer("github.com/osa911/lifecycle/internal/airtable"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TableURL builds the records endpoint for a base and table. Both segments
// are escaped like encodeURIComponent, so "Q&A" becomes "Q%26A".
func (c *Client) TableURL(baseID, tableName string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, escapeComponent(baseID), escapeComponent(tableName))
}

// escapeComponent percent-encodes every byte except A-Z a-z 0-9 and
// - _ . ! ~ * ' ( ).
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
			b.WriteByte(ch)
		case strings.IndexByte("-_.!~*'()", ch) >= 0:
			b.WriteByte(ch)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[ch>>4])
			b.WriteByte(hex[ch&0x0F])
		}
	}
	return b.String()
}

// CreateRecord writes one row. It makes exactly one request and never retries.
func (c *Client) CreateRecord(ctx context.Context, creds Credentials, fields Fields) (err error) {
	ctx, span := c.tracer.Start(ctx, "airtable.create_record", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("airtable.base_id", creds.BaseID),
		attribute.String("airtable.table", creds.TableName),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	payload, err := json.Marshal(createRequest{
		Records: []record{{Fields: fields}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal airtable record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TableURL(creds.BaseID, creds.TableName), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create airtable request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &RemoteError{
		StatusCode: resp.StatusCode,
		Message:    extractErrorMessage(body),
	}
}

// extractErrorMessage returns error.message from an Airtable error body, or
// an empty string when the body has no such field.
func extractErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Error) == 0 {
		return ""
	}

	var detail errorDetail
	if err := json.Unmarshal(eb.Error, &detail); err != nil {
		// Some endpoints answer {"error":"NOT_FOUND"}
		return ""
	}
	return detail.Message
}

// IsRemote reports whether err is a rejection from Airtable.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// Package contact implements the contact form controller: field state,
// validation, one submission to the record store and the feedback lifecycle
// the contact page renders.
package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osa911/lifecycle/internal/airtable"
	"github.com/osa911/lifecycle/internal/logging"
)

// ResetDelay is how long the success state stays up before the form returns
// to idle on its own.
const ResetDelay = 5 * time.Second

// DefaultTableName is used when SubmissionConfig.TableName is empty.
const DefaultTableName = "Contact Forms"

// User-facing failure messages.
const (
	MsgMissingCredentials = "Airtable credentials not found. Please check your .env file."
	MsgUnexpected         = "Something went wrong. Please try again."
)

var (
	// ErrSubmitInProgress is returned when Submit is called while a
	// submission is already in flight. No request is made.
	ErrSubmitInProgress = errors.New("contact: submission already in progress")

	// ErrUnknownField is returned by UpdateField for names outside the form.
	ErrUnknownField = errors.New("contact: unknown form field")

	// ErrMissingCredentials means the token or base id is not configured.
	ErrMissingCredentials = errors.New("contact: airtable credentials not found")
)

// State is the submission lifecycle of one form instance.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// FormFields is the user's current input.
type FormFields struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

// SubmissionConfig holds the record-store credentials for a form.
type SubmissionConfig struct {
	Token     string
	BaseID    string
	TableName string
}

func (c SubmissionConfig) credentials() (airtable.Credentials, bool) {
	if c.Token == "" || c.BaseID == "" {
		return airtable.Credentials{}, false
	}
	table := c.TableName
	if table == "" {
		table = DefaultTableName
	}
	return airtable.Credentials{Token: c.Token, BaseID: c.BaseID, TableName: table}, true
}

// RecordStore persists one submitted message.
type RecordStore interface {
	CreateRecord(ctx context.Context, creds airtable.Credentials, fields airtable.Fields) error
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	State        State      `json:"state"`
	ErrorMessage string     `json:"error_message,omitempty"`
	Fields       FormFields `json:"fields"`
}

// Busy reports whether the submit control should be disabled.
func (s Snapshot) Busy() bool {
	return s.State == StateLoading
}

// Controller owns one form instance. It is safe for concurrent use; the
// lock is never held across the network call.
type Controller struct {
	mu     sync.Mutex
	fields FormFields
	state  State
	errMsg string
	gen    uint64
	timer  Timer
	closed bool

	cfg        SubmissionConfig
	store      RecordStore
	scheduler  Scheduler
	resetAfter time.Duration
	logger     *logging.Logger
	onSuccess  func(ctx context.Context, submitted FormFields)
}

// Option customizes a Controller.
type Option func(*Controller)

// WithScheduler replaces the timer source used for the success reset.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.scheduler = s
	}
}

// WithResetDelay overrides ResetDelay.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.resetAfter = d
	}
}

// WithLogger sets the logger used for failed submissions.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithSuccessHook registers fn to run after a confirmed write, with the
// values that were submitted.
func WithSuccessHook(fn func(ctx context.Context, submitted FormFields)) Option {
	return func(c *Controller) {
		c.onSuccess = fn
	}
}

// NewController creates an idle form with empty fields.
func NewController(cfg SubmissionConfig, store RecordStore, opts ...Option) *Controller {
	c := &Controller{
		state:      StateIdle,
		cfg:        cfg,
		store:      store,
		scheduler:  realScheduler{},
		resetAfter: ResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.GetGlobalLogger()
	}
	return c
}

// UpdateField overwrites one input. No validation happens here.
func (c *Controller) UpdateField(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case FieldName:
		c.fields.Name = value
	case FieldEmail:
		c.fields.Email = value
	case FieldMessage:
		c.fields.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// SetFields overwrites all three inputs at once.
func (c *Controller) SetFields(f FormFields) {
	c.mu.Lock()
	c.fields = f
	c.mu.Unlock()
}

// Submit validates the current input and, when valid, writes it to the
// record store. Every outcome is reported through the state; the only error
// returned is ErrSubmitInProgress, for a call made while Loading.
func (c *Controller) Submit(ctx context.Context) error {
	return c.submit(ctx, nil)
}

// SubmitFields replaces the input with f and submits it in one step. While
// a submission is in flight it returns ErrSubmitInProgress and the current
// input is left as it was.
func (c *Controller) SubmitFields(ctx context.Context, f FormFields) error {
	return c.submit(ctx, &f)
}

func (c *Controller) submit(ctx context.Context, input *FormFields) error {
	c.mu.Lock()
	if c.state == StateLoading {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	if input != nil {
		c.fields = *input
	}
	c.stopTimerLocked()
	c.gen++
	c.state = StateLoading
	c.errMsg = ""
	fields := c.fields
	cfg := c.cfg
	c.mu.Unlock()

	if err := Validate(fields); err != nil {
		c.fail(err.Error())
		return nil
	}

	creds, ok := cfg.credentials()
	if !ok {
		c.logger.Error("Error submitting form: %v", ErrMissingCredentials)
		c.fail(MsgMissingCredentials)
		return nil
	}

	err := c.store.CreateRecord(ctx, creds, airtable.Fields{
		Name:    fields.Name,
		Email:   fields.Email,
		Message: fields.Message,
		Status:  airtable.StatusNew,
	})
	if err != nil {
		c.logger.Error("Error submitting form: %v", err)
		c.fail(failureMessage(err))
		return nil
	}

	c.succeed()
	if c.onSuccess != nil {
		c.onSuccess(ctx, fields)
	}
	return nil
}

// DismissSuccess returns to Idle immediately when the form shows success.
// In any other state it does nothing.
func (c *Controller) DismissSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateSuccess {
		return
	}
	c.stopTimerLocked()
	c.gen++
	c.state = StateIdle
}

// Snapshot returns the current state, error message and fields.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State:        c.state,
		ErrorMessage: c.errMsg,
		Fields:       c.fields,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close releases the pending reset timer. The form stays readable but no
// automatic transition happens afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.stopTimerLocked()
	c.gen++
}

func (c *Controller) fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateError
	c.errMsg = msg
}

func (c *Controller) succeed() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateSuccess
	c.errMsg = ""
	c.fields = FormFields{}
	c.gen++

	if c.closed {
		return
	}
	gen := c.gen
	c.timer = c.scheduler.AfterFunc(c.resetAfter, func() {
		c.autoReset(gen)
	})
}

// autoReset moves to Idle only if the form still shows the success it was
// scheduled for.
func (c *Controller) autoReset(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateSuccess || c.gen != gen {
		return
	}
	c.state = StateIdle
	c.timer = nil
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func failureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnexpected
}

package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/lifecycle/internal/airtable"
)

// Mock RecordStore
type mockStore struct {
	mu         sync.Mutex
	calls      []airtable.Fields
	creds      []airtable.Credentials
	createFunc func(ctx context.Context, creds airtable.Credentials, fields airtable.Fields) error
}

func (m *mockStore) CreateRecord(ctx context.Context, creds airtable.Credentials, fields airtable.Fields) error {
	m.mu.Lock()
	m.calls = append(m.calls, fields)
	m.creds = append(m.creds, creds)
	m.mu.Unlock()

	if m.createFunc != nil {
		return m.createFunc(ctx, creds, fields)
	}
	return nil
}

func (m *mockStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// fakeScheduler records scheduled callbacks so tests decide when they fire.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// fire runs the i-th callback even if it was stopped, the way a real timer
// can race its Stop call.
func (s *fakeScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	s.mu.Unlock()
	t.fn()
}

var validCfg = SubmissionConfig{Token: "pat", BaseID: "appBase"}

func newTestController(store RecordStore, sched Scheduler, opts ...Option) *Controller {
	opts = append([]Option{WithScheduler(sched)}, opts...)
	return NewController(validCfg, store, opts...)
}

func fillValid(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.UpdateField(FieldName, "Ada Lovelace"))
	require.NoError(t, c.UpdateField(FieldEmail, "ada@example.com"))
	require.NoError(t, c.UpdateField(FieldMessage, "Do you track dairy?"))
}

func TestController_InitialState(t *testing.T) {
	c := newTestController(&mockStore{}, &fakeScheduler{})

	snap := c.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.ErrorMessage)
	assert.Equal(t, FormFields{}, snap.Fields)
}

func TestController_UpdateField(t *testing.T) {
	c := newTestController(&mockStore{}, &fakeScheduler{})

	require.NoError(t, c.UpdateField(FieldName, "  not trimmed "))
	require.NoError(t, c.UpdateField(FieldEmail, "not-an-email"))
	require.NoError(t, c.UpdateField(FieldMessage, ""))
	assert.ErrorIs(t, c.UpdateField(Field("phone"), "123"), ErrUnknownField)

	assert.Equal(t, FormFields{Name: "  not trimmed ", Email: "not-an-email"}, c.Snapshot().Fields)
	assert.Equal(t, StateIdle, c.State())
}

func TestController_Submit_InvalidEmail(t *testing.T) {
	emails := []string{"", "ada", "ada@example", "ada @example.com", "a@b@c.d"}

	for _, email := range emails {
		t.Run(email, func(t *testing.T) {
			store := &mockStore{}
			c := newTestController(store, &fakeScheduler{})
			require.NoError(t, c.UpdateField(FieldName, "Ada"))
			require.NoError(t, c.UpdateField(FieldEmail, email))
			require.NoError(t, c.UpdateField(FieldMessage, "Hi"))

			require.NoError(t, c.Submit(context.Background()))

			snap := c.Snapshot()
			assert.Equal(t, StateError, snap.State)
			assert.Equal(t, MsgInvalidEmail, snap.ErrorMessage)
			assert.Equal(t, 0, store.callCount())
			assert.Equal(t, email, snap.Fields.Email, "fields survive a failed attempt")
		})
	}
}

func TestController_Submit_BlankFields(t *testing.T) {
	tests := []struct {
		name   string
		fields FormFields
	}{
		{"empty name", FormFields{Name: "", Email: "ada@example.com", Message: "Hi"}},
		{"whitespace name", FormFields{Name: " \t", Email: "ada@example.com", Message: "Hi"}},
		{"empty message", FormFields{Name: "Ada", Email: "ada@example.com", Message: ""}},
		{"whitespace message", FormFields{Name: "Ada", Email: "ada@example.com", Message: "\n \n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			c := newTestController(store, &fakeScheduler{})
			c.SetFields(tt.fields)

			require.NoError(t, c.Submit(context.Background()))

			snap := c.Snapshot()
			assert.Equal(t, StateError, snap.State)
			assert.Equal(t, MsgMissingFields, snap.ErrorMessage)
			assert.Equal(t, 0, store.callCount())
			assert.Equal(t, tt.fields, snap.Fields)
		})
	}
}

func TestController_Submit_MissingCredentials(t *testing.T) {
	configs := []SubmissionConfig{
		{Token: "", BaseID: "appBase"},
		{Token: "pat", BaseID: ""},
		{},
	}

	for _, cfg := range configs {
		store := &mockStore{}
		c := NewController(cfg, store, WithScheduler(&fakeScheduler{}))
		fillValid(t, c)

		require.NoError(t, c.Submit(context.Background()))

		snap := c.Snapshot()
		assert.Equal(t, StateError, snap.State)
		assert.Equal(t, MsgMissingCredentials, snap.ErrorMessage)
		assert.Equal(t, 0, store.callCount())
	}
}

func TestController_Submit_Success(t *testing.T) {
	store := &mockStore{}
	sched := &fakeScheduler{}
	var hooked FormFields
	c := newTestController(store, sched, WithSuccessHook(func(ctx context.Context, submitted FormFields) {
		hooked = submitted
	}))
	fillValid(t, c)

	require.NoError(t, c.Submit(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	assert.Empty(t, snap.ErrorMessage)
	assert.Equal(t, FormFields{}, snap.Fields)

	require.Equal(t, 1, store.callCount())
	assert.Equal(t, airtable.Fields{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "Do you track dairy?",
		Status:  "New",
	}, store.calls[0])
	assert.Equal(t, airtable.Credentials{Token: "pat", BaseID: "appBase", TableName: DefaultTableName}, store.creds[0])
	assert.Equal(t, "Ada Lovelace", hooked.Name)

	require.Len(t, sched.timers, 1)
	assert.Equal(t, ResetDelay, sched.timers[0].delay)

	sched.fire(0)
	assert.Equal(t, StateIdle, c.State())
}

func TestController_Submit_TableName(t *testing.T) {
	tests := []struct {
		name  string
		table string
		want  string
	}{
		{"empty uses default", "", DefaultTableName},
		{"custom", "Leads", "Leads"},
		{"whitespace kept", "  ", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			cfg := validCfg
			cfg.TableName = tt.table
			c := NewController(cfg, store, WithScheduler(&fakeScheduler{}))
			fillValid(t, c)

			require.NoError(t, c.Submit(context.Background()))
			require.Equal(t, 1, store.callCount())
			assert.Equal(t, tt.want, store.creds[0].TableName)
		})
	}
}

func TestController_Submit_RemoteRejection(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"message from body", &airtable.RemoteError{StatusCode: 422, Message: "X"}, "X"},
		{"no parseable body", &airtable.RemoteError{StatusCode: 500}, "Failed to submit form"},
		{"transport failure", errors.New("dial tcp: connection refused"), "dial tcp: connection refused"},
		{"error without message", errors.New(""), MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{createFunc: func(context.Context, airtable.Credentials, airtable.Fields) error {
				return tt.err
			}}
			sched := &fakeScheduler{}
			c := newTestController(store, sched)
			fillValid(t, c)

			require.NoError(t, c.Submit(context.Background()))

			snap := c.Snapshot()
			assert.Equal(t, StateError, snap.State)
			assert.Equal(t, tt.wantMsg, snap.ErrorMessage)
			assert.Equal(t, "Ada Lovelace", snap.Fields.Name, "fields survive a failed attempt")
			assert.Empty(t, sched.timers)
		})
	}
}

func TestController_Submit_RetryClearsError(t *testing.T) {
	fail := true
	store := &mockStore{createFunc: func(context.Context, airtable.Credentials, airtable.Fields) error {
		if fail {
			return &airtable.RemoteError{StatusCode: 503, Message: "busy"}
		}
		return nil
	}}
	c := newTestController(store, &fakeScheduler{})
	fillValid(t, c)

	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, "busy", c.Snapshot().ErrorMessage)

	fail = false
	require.NoError(t, c.Submit(context.Background()))
	snap := c.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	assert.Empty(t, snap.ErrorMessage)
	assert.Equal(t, 2, store.callCount())
}

func TestController_Submit_WhileLoading(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	store := &mockStore{createFunc: func(context.Context, airtable.Credentials, airtable.Fields) error {
		close(entered)
		<-release
		return nil
	}}
	c := newTestController(store, &fakeScheduler{})
	fillValid(t, c)

	done := make(chan error, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()

	<-entered
	assert.Equal(t, StateLoading, c.State())
	assert.True(t, c.Snapshot().Busy())
	assert.ErrorIs(t, c.Submit(context.Background()), ErrSubmitInProgress)
	assert.Empty(t, c.Snapshot().ErrorMessage)

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, store.callCount())
	assert.Equal(t, StateSuccess, c.State())
}

func TestController_SubmitFields(t *testing.T) {
	store := &mockStore{}
	c := newTestController(store, &fakeScheduler{})

	require.NoError(t, c.SubmitFields(context.Background(), FormFields{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "Do you track dairy?",
	}))

	assert.Equal(t, StateSuccess, c.State())
	require.Equal(t, 1, store.callCount())
	assert.Equal(t, "Ada Lovelace", store.calls[0].Name)
}

func TestController_SubmitFields_WhileLoadingKeepsInput(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	store := &mockStore{createFunc: func(context.Context, airtable.Credentials, airtable.Fields) error {
		close(entered)
		<-release
		return errors.New("Invalid request")
	}}
	c := newTestController(store, &fakeScheduler{})
	first := FormFields{Name: "Ada", Email: "ada@example.com", Message: "First"}

	done := make(chan error, 1)
	go func() {
		done <- c.SubmitFields(context.Background(), first)
	}()

	<-entered
	err := c.SubmitFields(context.Background(), FormFields{Name: "Bob", Email: "bob@example.com", Message: "Second"})
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.Equal(t, first, c.Snapshot().Fields)

	close(release)
	require.NoError(t, <-done)

	snap := c.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, first, snap.Fields)
	assert.Equal(t, 1, store.callCount())
}

func TestController_DismissSuccess(t *testing.T) {
	t.Run("no effect outside success", func(t *testing.T) {
		c := newTestController(&mockStore{}, &fakeScheduler{})
		c.DismissSuccess()
		assert.Equal(t, StateIdle, c.State())

		require.NoError(t, c.UpdateField(FieldEmail, "bad"))
		require.NoError(t, c.Submit(context.Background()))
		before := c.Snapshot()
		c.DismissSuccess()
		assert.Equal(t, before, c.Snapshot())
	})

	t.Run("moves success to idle and stops the timer", func(t *testing.T) {
		sched := &fakeScheduler{}
		c := newTestController(&mockStore{}, sched)
		fillValid(t, c)
		require.NoError(t, c.Submit(context.Background()))

		c.DismissSuccess()
		assert.Equal(t, StateIdle, c.State())
		require.Len(t, sched.timers, 1)
		assert.True(t, sched.timers[0].stopped)
	})
}

func TestController_TimerAfterDismiss(t *testing.T) {
	sched := &fakeScheduler{}
	c := newTestController(&mockStore{}, sched)
	fillValid(t, c)
	require.NoError(t, c.Submit(context.Background()))

	c.DismissSuccess()
	require.NoError(t, c.UpdateField(FieldName, "typing again"))

	// The stale timer fires anyway
	sched.fire(0)
	snap := c.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, "typing again", snap.Fields.Name)
}

func TestController_StaleTimerDoesNotCutNewSuccessShort(t *testing.T) {
	sched := &fakeScheduler{}
	c := newTestController(&mockStore{}, sched)

	fillValid(t, c)
	require.NoError(t, c.Submit(context.Background()))
	c.DismissSuccess()

	fillValid(t, c)
	require.NoError(t, c.Submit(context.Background()))
	require.Len(t, sched.timers, 2)

	sched.fire(0)
	assert.Equal(t, StateSuccess, c.State(), "first timer belongs to an earlier success")

	sched.fire(1)
	assert.Equal(t, StateIdle, c.State())
}

func TestController_TimerAfterError(t *testing.T) {
	sched := &fakeScheduler{}
	fail := false
	store := &mockStore{createFunc: func(context.Context, airtable.Credentials, airtable.Fields) error {
		if fail {
			return errors.New("boom")
		}
		return nil
	}}
	c := newTestController(store, sched)

	fillValid(t, c)
	require.NoError(t, c.Submit(context.Background()))

	fail = true
	fillValid(t, c)
	require.NoError(t, c.Submit(context.Background()))
	assert.True(t, sched.timers[0].stopped)

	sched.fire(0)
	snap := c.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, "boom", snap.ErrorMessage)
}

func TestController_Close(t *testing.T) {
	sched := &fakeScheduler{}
	c := newTestController(&mockStore{}, sched)
	fillValid(t, c)
	require.NoError(t, c.Submit(context.Background()))

	c.Close()
	require.Len(t, sched.timers, 1)
	assert.True(t, sched.timers[0].stopped)

	sched.fire(0)
	assert.Equal(t, StateSuccess, c.State())

	c.DismissSuccess()
	fillValid(t, c)
	require.NoError(t, c.Submit(context.Background()))
	assert.Len(t, sched.timers, 1, "closed forms schedule no reset")
}

func TestController_RealTimer(t *testing.T) {
	c := NewController(validCfg, &mockStore{}, WithResetDelay(10*time.Millisecond))
	fillValid(t, c)
	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, StateSuccess, c.State())

	assert.Eventually(t, func() bool {
		return c.State() == StateIdle
	}, time.Second, 5*time.Millisecond)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(42).String())

	text, err := StateSuccess.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "success", string(text))
}

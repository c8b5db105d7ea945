package tasks

import (
	"sync"
	"time"

	"github.com/osa911/lifecycle/internal/logging"
)

// Sweeper is the part of the form-session registry the cleanup task needs.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
}

// SessionCleanup periodically drops idle contact form sessions
type SessionCleanup struct {
	sessions Sweeper
	maxIdle  time.Duration
	interval time.Duration
	done     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewSessionCleanup creates a new session cleanup task
func NewSessionCleanup(sessions Sweeper, maxIdle, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		sessions: sessions,
		maxIdle:  maxIdle,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the session cleanup task in the background
func (sc *SessionCleanup) Start() {
	sc.wg.Add(1)
	go sc.runPeriodically()
}

// Stop gracefully stops the cleanup task. It is safe to call more than once.
func (sc *SessionCleanup) Stop() {
	sc.once.Do(func() {
		close(sc.done)
	})
	sc.wg.Wait()
}

func (sc *SessionCleanup) runPeriodically() {
	defer sc.wg.Done()
	logger := logging.GetGlobalLogger()

	logger.Info("Starting form session cleanup task (idle limit %s, every %s)", sc.maxIdle, sc.interval)

	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sc.cleanup()
		case <-sc.done:
			logger.Info("Form session cleanup task stopped")
			return
		}
	}
}

func (sc *SessionCleanup) cleanup() {
	if removed := sc.sessions.Sweep(sc.maxIdle); removed > 0 {
		logging.GetGlobalLogger().Debug("Removed %d idle form sessions", removed)
	}
}

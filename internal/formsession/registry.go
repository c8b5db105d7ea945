// Package formsession keeps one contact form controller per visitor so the
// server-rendered form survives the post/redirect/get round trip.
package formsession

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osa911/lifecycle/internal/contact"
)

// Factory builds the controller for a new visitor.
type Factory func() *contact.Controller

type entry struct {
	ctrl     *contact.Controller
	lastSeen time.Time
}

// Registry maps visitor ids to their form controllers.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	factory Factory
	now     func() time.Time
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		factory: factory,
		now:     time.Now,
	}
}

// Get returns the controller for id, if one is live, and marks it used.
func (r *Registry) Get(id string) (*contact.Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.ctrl, true
}

// GetOrCreate returns the controller for id. An unknown or invalid id gets a
// fresh controller under a new id, which the caller must hand back to the
// visitor.
func (r *Registry) GetOrCreate(id string) (string, *contact.Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		e.lastSeen = r.now()
		return id, e.ctrl
	}

	id = uuid.NewString()
	ctrl := r.factory()
	r.entries[id] = &entry{ctrl: ctrl, lastSeen: r.now()}
	return id, ctrl
}

// Sweep closes and forgets every controller idle for longer than maxIdle.
// It returns how many were removed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	cutoff := r.now().Add(-maxIdle)
	var stale []*contact.Controller
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.ctrl)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, ctrl := range stale {
		ctrl.Close()
	}
	return len(stale)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close shuts down every controller.
func (r *Registry) Close() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range entries {
		e.ctrl.Close()
	}
}

package scheduler

import (
	"sync"
	"time"
)

// Status is a point-in-time snapshot of run outcomes.
type Status struct {
	Runs        int
	Failures    int
	LastRun     time.Time
	LastSuccess time.Time
	LastError   error
}

// Health tracks how scheduled runs have been going.
type Health struct {
	mu     sync.RWMutex
	status Status
}

// NewHealth creates an empty tracker.
func NewHealth() *Health {
	return &Health{}
}

// RecordSuccess notes a run that completed without an unexpected error.
func (h *Health) RecordSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	h.status.Runs++
	h.status.LastRun = now
	h.status.LastSuccess = now
	h.status.LastError = nil
}

// RecordFailure notes a run that ended in an unexpected error.
func (h *Health) RecordFailure(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.status.Runs++
	h.status.Failures++
	h.status.LastRun = time.Now()
	h.status.LastError = err
}

// Snapshot returns a copy of the current status.
func (h *Health) Snapshot() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Package progress provides a small rate-reporting tracker for batch steps.
package progress

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Tracker counts completed units of a batch step and reports count and rate
// when the step finishes. The clock is injectable so tests control elapsed
// time; Tick is safe to call from multiple goroutines.
type Tracker struct {
	mu      sync.Mutex
	clock   quartz.Clock
	logger  *log.Logger
	label   string
	started time.Time
	count   int
}

// NewTracker starts a tracker for the step described by label. A nil clock
// uses the real one.
func NewTracker(logger *log.Logger, clock quartz.Clock, label string) *Tracker {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Tracker{
		clock:   clock,
		logger:  logger,
		label:   label,
		started: clock.Now(),
	}
}

// Tick records one completed unit.
func (t *Tracker) Tick() {
	t.mu.Lock()
	t.count++
	t.mu.Unlock()
}

// Count returns the units completed so far.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Rate returns completed units per second since the tracker started.
func (t *Tracker) Rate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	elapsed := t.clock.Since(t.started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(t.count) / elapsed
}

// Done logs the final count, elapsed time and rate for the step.
func (t *Tracker) Done() {
	t.mu.Lock()
	count := t.count
	elapsed := t.clock.Since(t.started)
	t.mu.Unlock()

	rate := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(count) / secs
	}
	t.logger.Info(t.label, "count", count, "elapsed", elapsed.Round(time.Millisecond), "per_sec", rate)
}

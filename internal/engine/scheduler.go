package engine

import (
	"sync"
	"time"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/logger"
)

// defaultSettle is the warp-to-click pause used when a job does not set
// one. Small relative to any usable cadence.
const defaultSettle = 10 * time.Millisecond

// Counters is the shared progress state between a running job and the
// shell. Tiny, polled, and without ordering requirements beyond atomic
// read-modify-write, so guarded cells fit better than channels here.
type Counters struct {
	mu        sync.Mutex
	running   bool
	completed uint64
}

// Running reports whether a job is active.
func (c *Counters) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Completed returns the lifetime count of successful clicks.
func (c *Counters) Completed() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

// ResetCompleted zeroes the click counter. Only an explicit caller action
// does this; job completion never resets it.
func (c *Counters) ResetCompleted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed = 0
}

// begin flips running on, or reports false if a job already holds it.
func (c *Counters) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return false
	}
	c.running = true
	return true
}

func (c *Counters) clearRunning() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

func (c *Counters) increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed++
}

// Job describes one click run. Count is the budget: every iteration,
// successful or not, consumes one unit, so a persistently failing backend
// can never turn a bounded run into a retry storm.
type Job struct {
	Target  backend.Point
	Button  backend.Button
	Cadence time.Duration
	Settle  time.Duration
	Count   uint
}

// Scheduler runs at most one Job at a time on its own goroutine. Stop
// requests are cooperative: the running flag is checked at iteration
// boundaries only, so a cancel lands within one cadence period and never
// interrupts an in-flight click half way.
type Scheduler struct {
	eng      *Engine
	counters Counters
}

// NewScheduler creates a scheduler issuing clicks through eng.
func NewScheduler(eng *Engine) *Scheduler {
	return &Scheduler{eng: eng}
}

// Counters exposes the shared progress state for the shell to poll.
func (s *Scheduler) Counters() *Counters {
	return &s.counters
}

// Start launches a job worker. A start request while a job is running is
// dropped, not queued, and returns false. A zero budget is rejected.
func (s *Scheduler) Start(job Job) bool {
	if job.Count == 0 {
		logger.Warn("job with zero budget dropped")
		return false
	}
	if !s.counters.begin() {
		logger.Debug("job already running, start request dropped")
		return false
	}

	if job.Settle <= 0 {
		job.Settle = defaultSettle
	}

	logger.Info("job started",
		"target", job.Target, "button", job.Button,
		"cadence", job.Cadence, "count", job.Count)

	go s.run(job)
	return true
}

// ClickOnce runs a single-shot job: budget one, no trailing cadence wait.
func (s *Scheduler) ClickOnce(target backend.Point, b backend.Button) bool {
	return s.Start(Job{Target: target, Button: b, Count: 1})
}

// Stop requests a cooperative stop. The worker observes it at the next
// iteration boundary.
func (s *Scheduler) Stop() {
	s.counters.clearRunning()
}

func (s *Scheduler) run(job Job) {
	// Clearing running is the worker's last act; the shell detects
	// completion through the flag alone, there is no separate done signal.
	defer s.counters.clearRunning()

	remaining := job.Count
	for remaining > 0 && s.counters.Running() {
		if err := s.eng.MoveClick(job.Target, job.Button, job.Settle); err != nil {
			// A failed attempt still consumes budget, only the counter
			// increment is skipped.
			logger.Warn("click attempt failed", "target", job.Target, "err", err)
		} else {
			s.counters.increment()
		}
		remaining--

		if remaining == 0 || !s.counters.Running() {
			break
		}
		// Cadence wait happens with no lock held so pollers are never
		// blocked on a job's idle period.
		time.Sleep(job.Cadence)
	}

	logger.Info("job finished", "completed", s.counters.Completed())
}

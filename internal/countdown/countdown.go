// Package countdown implements a single-purpose countdown clock. Remaining
// time is always recomputed from an absolute deadline captured at start, so
// missed or late ticks never cause drift.
package countdown

import (
	"errors"
	"time"

	"github.com/fieldside/scorekeeper/internal/common/clock"
	"github.com/fieldside/scorekeeper/internal/models"
)

// Config holds configuration for a countdown clock
type Config struct {
	// Default is the duration the clock starts from when no remaining
	// duration is remembered
	Default time.Duration

	// Clock supplies the current time
	Clock clock.Clock
}

// Clock is a countdown timer with two states: stopped with a remembered
// remaining duration, or running toward an absolute deadline.
type Clock struct {
	clk clock.Clock

	def          time.Duration
	running      bool
	deadline     time.Time
	remaining    time.Duration
	hasRemaining bool
}

// New creates a stopped clock with the configured default duration
func New(cfg *Config) (*Clock, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.Default <= 0 {
		return nil, errors.New("default duration must be positive")
	}

	return &Clock{
		clk: cfg.Clock,
		def: cfg.Default,
	}, nil
}

// Start transitions to running. The deadline is now plus the remembered
// remaining duration, or the configured default if none is remembered.
func (c *Clock) Start() {
	if c.running {
		return
	}

	remaining := c.def
	if c.hasRemaining {
		remaining = c.remaining
	}

	c.deadline = c.clk.Now().Add(remaining)
	c.running = true
}

// Stop transitions to stopped, remembering the remaining duration.
func (c *Clock) Stop() {
	if !c.running {
		return
	}

	c.remaining = c.deadline.Sub(c.clk.Now())
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.hasRemaining = true
	c.running = false
}

// Reset forces the clock to stopped with the given remaining duration,
// canceling any in-flight run.
func (c *Clock) Reset(d time.Duration) {
	c.running = false
	c.remaining = d
	c.hasRemaining = true
}

// Toggle starts a stopped clock and stops a running one.
func (c *Clock) Toggle() {
	if c.running {
		c.Stop()
	} else {
		c.Start()
	}
}

// Running reports whether the clock is counting down.
func (c *Clock) Running() bool {
	return c.running
}

// Remaining returns the wall-clock-accurate remaining duration.
func (c *Clock) Remaining() time.Duration {
	if c.running {
		remaining := c.deadline.Sub(c.clk.Now())
		if remaining < 0 {
			return 0
		}
		return remaining
	}
	if c.hasRemaining {
		return c.remaining
	}
	return c.def
}

// Tick checks a running clock against its deadline. On expiry the clock
// auto-transitions to stopped at zero; Tick reports the expiry exactly
// once so the caller can react.
func (c *Clock) Tick() bool {
	if !c.running {
		return false
	}

	if c.deadline.After(c.clk.Now()) {
		return false
	}

	c.running = false
	c.remaining = 0
	c.hasRemaining = true
	return true
}

// SetDefault updates the configured default duration. The next Start with
// no remembered remaining uses it.
func (c *Clock) SetDefault(d time.Duration) {
	if d > 0 {
		c.def = d
	}
}

// State returns the raw restorable clock state for a snapshot.
func (c *Clock) State() models.ClockState {
	return models.ClockState{
		Running:      c.running,
		Deadline:     c.deadline,
		Remaining:    c.remaining,
		HasRemaining: c.hasRemaining,
		Default:      c.def,
	}
}

// Restore loads a snapshot state. A deadline that already passed while the
// snapshot sat in storage comes back as stopped at zero.
func (c *Clock) Restore(state models.ClockState) {
	if state.Default > 0 {
		c.def = state.Default
	}
	c.remaining = state.Remaining
	c.hasRemaining = state.HasRemaining
	c.deadline = state.Deadline
	c.running = state.Running

	if c.running && !c.deadline.After(c.clk.Now()) {
		c.running = false
		c.remaining = 0
		c.hasRemaining = true
	}
}

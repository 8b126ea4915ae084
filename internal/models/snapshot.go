package models

import "time"

// TimeoutBalance tracks the timeouts a team has left
type TimeoutBalance struct {
	// Total is the number of timeouts remaining for the whole match
	Total int

	// Half is the number of timeouts remaining in the current half
	Half int
}

// ClockState is the raw, restorable state of a countdown clock
type ClockState struct {
	// Running indicates the clock is counting down toward Deadline
	Running bool

	// Deadline is the absolute expiry time while running
	Deadline time.Time

	// Remaining is the remembered remaining duration while stopped
	Remaining time.Duration

	// HasRemaining indicates Remaining is meaningful; when false the
	// clock falls back to its configured default
	HasRemaining bool

	// Default is the configured duration the clock resets to
	Default time.Duration
}

// Snapshot is the complete reconstructable match state, persisted as one
// atomic unit. Derived values (scoreboard, gender labels) are intentionally
// recomputed from Events on recovery, never trusted from storage.
type Snapshot struct {
	// Config is the match configuration at snapshot time
	Config MatchConfig

	// TeamA and TeamB are the selected team names
	TeamA string
	TeamB string

	// Events is the full event log in insertion order
	Events []Event

	// NextSeq is the next event sequence number to assign
	NextSeq int

	// Primary and Secondary are the raw clock states
	Primary   ClockState
	Secondary ClockState

	// BalanceA and BalanceB are the timeout balances at snapshot time;
	// recovery recomputes them from Events
	BalanceA TimeoutBalance
	BalanceB TimeoutBalance

	// Started indicates the match has been started
	Started bool

	// Stoppage indicates a stoppage is active
	Stoppage bool

	// StoppagePausedPrimary and StoppagePausedSecondary remember which
	// clocks the active stoppage paused
	StoppagePausedPrimary   bool
	StoppagePausedSecondary bool

	// HalftimeResolved indicates a halftime reason has been resolved and
	// no automatic trigger may fire again this match
	HalftimeResolved bool

	// HalftimeSuppressed blocks automatic halftime re-triggering after the
	// halftime event was deleted
	HalftimeSuppressed bool

	// PendingClockHalftime indicates the clock trigger fired and halftime
	// will be declared on the next accepted score
	PendingClockHalftime bool

	// SavedAt is when the snapshot was written
	SavedAt time.Time
}

package match

import (
	"time"

	"github.com/fieldside/scorekeeper/internal/common/clock"
	"github.com/fieldside/scorekeeper/internal/common/uuid"
	"github.com/fieldside/scorekeeper/internal/models"
	rosterClient "github.com/fieldside/scorekeeper/internal/roster"
	"github.com/fieldside/scorekeeper/internal/repositories/roster"
	"github.com/fieldside/scorekeeper/internal/repositories/snapshot"
	"github.com/fieldside/scorekeeper/internal/sink"
)

// Config holds configuration for the match service
type Config struct {
	// Repository dependencies
	SnapshotRepo snapshot.Repository
	RosterRepo   roster.Repository

	// Collaborator clients
	RosterClient rosterClient.Client
	Sink         sink.Client

	// ExportDir is where local CSV exports land; defaults to the working
	// directory
	ExportDir string

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// SelectTeamsInput contains the two team names
type SelectTeamsInput struct {
	// TeamA and TeamB are the selected team names
	TeamA string
	TeamB string
}

// SelectTeamsOutput contains the result of selecting teams
type SelectTeamsOutput struct{}

// SetupInput contains the replacement match configuration
type SetupInput struct {
	// Config is applied wholesale after validation
	Config models.MatchConfig
}

// SetupOutput contains the result of applying the configuration
type SetupOutput struct{}

// FetchRosterInput contains parameters for a roster refresh
type FetchRosterInput struct{}

// FetchRosterOutput contains the roster now in use
type FetchRosterOutput struct {
	// Teams is the team to players mapping
	Teams models.Roster

	// FromCache indicates the provider failed and the cache served
	FromCache bool

	// Warning carries a non-fatal collaborator failure, if any
	Warning string
}

// StartMatchInput contains parameters for starting the match
type StartMatchInput struct{}

// StartMatchOutput contains the result of starting the match
type StartMatchOutput struct {
	// EventID is the appended match-start event
	EventID string
}

// AddScoreInput contains parameters for recording a goal
type AddScoreInput struct {
	// Side is the scoring side
	Side models.TeamSide

	// Scorer is the scoring player's name
	Scorer string

	// Assistor is the assisting player's name or an assist sentinel
	Assistor string
}

// AddScoreOutput contains the result of recording a goal
type AddScoreOutput struct {
	// EventID is the appended score event
	EventID string

	// TeamAScore and TeamBScore are the new totals
	TeamAScore int
	TeamBScore int

	// HalftimeDeclared indicates an auto-trigger fired on this score
	HalftimeDeclared bool

	// HalftimeReason is set when HalftimeDeclared is true
	HalftimeReason models.HalftimeReason

	// CapReached indicates this score hit the cap and locked the clocks
	CapReached bool
}

// EditScoreInput contains parameters for editing a score event
type EditScoreInput struct {
	// EventID identifies the score event
	EventID string

	// Scorer and Assistor replace the stored values
	Scorer   string
	Assistor string
}

// EditScoreOutput contains the result of the edit
type EditScoreOutput struct{}

// DeleteScoreInput contains parameters for deleting a score event
type DeleteScoreInput struct {
	// EventID identifies the score event
	EventID string
}

// DeleteScoreOutput contains the scoreboard after deletion
type DeleteScoreOutput struct {
	TeamAScore int
	TeamBScore int
}

// CallTimeoutInput contains parameters for calling a timeout
type CallTimeoutInput struct {
	// Side is the team calling the timeout
	Side models.TeamSide
}

// CallTimeoutOutput contains the result of the timeout
type CallTimeoutOutput struct {
	// EventID is the appended timeout event
	EventID string

	// BalanceA and BalanceB are the balances after the debit
	BalanceA models.TimeoutBalance
	BalanceB models.TimeoutBalance
}

// ReassignTimeoutInput contains parameters for reassigning a timeout
type ReassignTimeoutInput struct {
	// EventID identifies the timeout event
	EventID string

	// NewSide is the side the timeout moves to
	NewSide models.TeamSide
}

// ReassignTimeoutOutput contains the balances after the move
type ReassignTimeoutOutput struct {
	BalanceA models.TimeoutBalance
	BalanceB models.TimeoutBalance
}

// DeclareHalftimeInput contains parameters for a manual halftime
type DeclareHalftimeInput struct{}

// DeclareHalftimeOutput contains the result of declaring halftime
type DeclareHalftimeOutput struct {
	// EventID is the appended halftime event
	EventID string
}

// DeleteHalftimeInput contains parameters for deleting the halftime event
type DeleteHalftimeInput struct {
	// EventID must identify the most recent halftime event
	EventID string
}

// DeleteHalftimeOutput contains the result of the deletion
type DeleteHalftimeOutput struct{}

// ToggleStoppageInput contains parameters for toggling the stoppage flag
type ToggleStoppageInput struct{}

// ToggleStoppageOutput contains the stoppage state after the toggle
type ToggleStoppageOutput struct {
	// Active indicates a stoppage is now in effect
	Active bool

	// EventID is the appended stoppage event when activating
	EventID string
}

// SubmitInput contains parameters for submitting the match
type SubmitInput struct{}

// SubmitOutput contains the result of the submission
type SubmitOutput struct {
	// CSVPath is where the local export landed
	CSVPath string

	// Warning carries a remote-sink failure; the local export still ran
	Warning string
}

// EventView is an event plus its derived display fields
type EventView struct {
	models.Event

	// GenderLabel is the derived sequence label (Score events only)
	GenderLabel string

	// Team is the current name of the attributed side, or empty
	Team string
}

// StateInput contains parameters for reading the full state
type StateInput struct{}

// StateOutput is everything the presentation layer renders
type StateOutput struct {
	// TeamA and TeamB are the selected team names
	TeamA string
	TeamB string

	// Roster is the team to players mapping currently loaded
	Roster models.Roster

	// Config is the active match configuration
	Config models.MatchConfig

	// Started indicates the match is underway
	Started bool

	// Stoppage indicates an active stoppage
	Stoppage bool

	// CapReached indicates the score cap locked the clocks
	CapReached bool

	// HalftimeDeclared indicates the log holds a halftime event
	HalftimeDeclared bool

	// HalftimeReason is the recorded reason when declared
	HalftimeReason models.HalftimeReason

	// PendingRecovery indicates a restorable snapshot awaits a decision
	PendingRecovery bool

	// TeamAScore and TeamBScore are the derived totals
	TeamAScore int
	TeamBScore int

	// BalanceA and BalanceB are the derived timeout balances
	BalanceA models.TimeoutBalance
	BalanceB models.TimeoutBalance

	// Primary and secondary clock display state
	PrimaryRunning     bool
	PrimaryRemaining   time.Duration
	SecondaryRunning   bool
	SecondaryRemaining time.Duration

	// Events is the log in insertion order with derived display fields
	Events []EventView
}

// TickInput contains parameters for a periodic tick
type TickInput struct{}

// TickOutput reports what the tick changed
type TickOutput struct {
	// PrimaryExpired and SecondaryExpired report clocks that hit zero on
	// this tick
	PrimaryExpired   bool
	SecondaryExpired bool

	// Changed indicates display state changed and a redraw is due
	Changed bool

	// Warning carries a persistence failure from the autosave path
	Warning string
}

// RecoverInput contains parameters for restoring the pending snapshot
type RecoverInput struct{}

// RecoverOutput contains the result of the restoration
type RecoverOutput struct {
	// Events is how many log entries were restored
	Events int
}

// DiscardRecoveryInput contains parameters for refusing recovery
type DiscardRecoveryInput struct{}

// DiscardRecoveryOutput contains the result of the refusal
type DiscardRecoveryOutput struct{}

// FlushInput contains parameters for a forced snapshot write
type FlushInput struct{}

// FlushOutput contains the result of the write
type FlushOutput struct {
	// Warning carries a persistence failure; in-memory state stays
	// authoritative
	Warning string
}

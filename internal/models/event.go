package models

import (
	"time"
)

// EventKind identifies what a log entry records
type EventKind string

const (
	// EventKindScore records a goal for one side
	EventKindScore EventKind = "score"

	// EventKindTimeout records a team-called timeout
	EventKindTimeout EventKind = "timeout"

	// EventKindHalftime records the halftime declaration
	EventKindHalftime EventKind = "halftime"

	// EventKindStoppage records an operator-declared stoppage
	EventKindStoppage EventKind = "stoppage"

	// EventKindMatchStart records the start of the match
	EventKindMatchStart EventKind = "match_start"
)

// TeamSide identifies which side an event is attributed to
type TeamSide string

const (
	// TeamSideA is the first selected team
	TeamSideA TeamSide = "A"

	// TeamSideB is the second selected team
	TeamSideB TeamSide = "B"

	// TeamSideNone is used for events not attributed to a side
	TeamSideNone TeamSide = "none"
)

// HalftimeReason records what caused the halftime declaration
type HalftimeReason string

const (
	// HalftimeReasonManual indicates the operator declared halftime
	HalftimeReasonManual HalftimeReason = "manual"

	// HalftimeReasonScore indicates the score threshold triggered halftime
	HalftimeReasonScore HalftimeReason = "score"

	// HalftimeReasonClock indicates the match clock triggered halftime
	HalftimeReasonClock HalftimeReason = "clock"
)

// Assist sentinels used in place of a player name on Score events
const (
	// AssistNone marks an unassisted score
	AssistNone = "No Assist"

	// AssistCallahan marks a defensive score that needs no assist
	AssistCallahan = "Callahan"
)

// Event is a single entry in the match log. Events are never edited in
// place; the log replaces or removes them by ID.
type Event struct {
	// ID is the unique identifier for the event
	ID string

	// Seq is the insertion order of the event, monotonic per match
	Seq int

	// Kind identifies what the event records
	Kind EventKind

	// MatchID identifies the two teams as they were named at creation time
	MatchID string

	// Timestamp is when the event was created, display only
	Timestamp time.Time

	// TeamSide is the side the event is attributed to
	TeamSide TeamSide

	// Scorer is the scoring player's name (Score events only)
	Scorer string

	// Assistor is the assisting player's name or an assist sentinel
	// (Score events only)
	Assistor string

	// HalftimeReason is what caused the declaration (Halftime events only)
	HalftimeReason HalftimeReason
}

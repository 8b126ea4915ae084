package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTeamsNotSelected        MatchError = "teams not selected"
	ErrStoppageActive          MatchError = "stoppage active"
	ErrMatchAlreadyStarted     MatchError = "match already started"
	ErrMatchNotStarted         MatchError = "match not started"
	ErrScoreCapReached         MatchError = "score cap reached"
	ErrNoTimeoutsRemaining     MatchError = "no timeouts remaining"
	ErrHalftimeAlreadyDeclared MatchError = "halftime already declared"
	ErrEventNotFound           MatchError = "event not found"
	ErrNoEventsLogged          MatchError = "no scores logged"
	ErrSubmissionInProgress    MatchError = "submission in progress"
	ErrInvalidConfig           MatchError = "invalid match configuration"
	ErrInvalidTeamSide         MatchError = "invalid team side"
	ErrNoRecoveryPending       MatchError = "no recovery pending"
	ErrNilConfig               MatchError = "config cannot be nil"
	ErrNilSnapshotRepo         MatchError = "snapshot repository cannot be nil"
	ErrNilRosterRepo           MatchError = "roster repository cannot be nil"
	ErrNilRosterClient         MatchError = "roster client cannot be nil"
	ErrNilSink                 MatchError = "sink client cannot be nil"
	ErrNilClock                MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator        MatchError = "UUID generator cannot be nil"
)

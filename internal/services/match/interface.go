package match

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fieldside/scorekeeper/internal/services/match Service

// Service defines the interface for match operations. It is the single
// mutator of match state: every operator intent is validated against the
// current phase here before it touches the event log or the clocks.
type Service interface {
	// SelectTeams sets the two team names
	SelectTeams(ctx context.Context, input *SelectTeamsInput) (*SelectTeamsOutput, error)

	// Setup replaces the match configuration wholesale
	Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error)

	// FetchRoster retrieves the roster, falling back to the cache
	FetchRoster(ctx context.Context, input *FetchRosterInput) (*FetchRosterOutput, error)

	// StartMatch starts the match and the primary clock
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// AddScore records a goal and evaluates halftime auto-triggers
	AddScore(ctx context.Context, input *AddScoreInput) (*AddScoreOutput, error)

	// EditScore updates scorer/assistor on an existing score event
	EditScore(ctx context.Context, input *EditScoreInput) (*EditScoreOutput, error)

	// DeleteScore removes a score event, renumbering later gender labels
	DeleteScore(ctx context.Context, input *DeleteScoreInput) (*DeleteScoreOutput, error)

	// CallTimeout records a timeout and starts the break clock
	CallTimeout(ctx context.Context, input *CallTimeoutInput) (*CallTimeoutOutput, error)

	// ReassignTimeout moves a timeout event to the other side
	ReassignTimeout(ctx context.Context, input *ReassignTimeoutInput) (*ReassignTimeoutOutput, error)

	// DeclareHalftime declares halftime manually
	DeclareHalftime(ctx context.Context, input *DeclareHalftimeInput) (*DeclareHalftimeOutput, error)

	// DeleteHalftime removes the most recent halftime event
	DeleteHalftime(ctx context.Context, input *DeleteHalftimeInput) (*DeleteHalftimeOutput, error)

	// ToggleStoppage flips the stoppage flag, pausing or resuming clocks
	ToggleStoppage(ctx context.Context, input *ToggleStoppageInput) (*ToggleStoppageOutput, error)

	// Submit exports the match and resets to a fresh one
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// State returns everything the presentation layer renders
	State(ctx context.Context, input *StateInput) (*StateOutput, error)

	// Tick drives both clocks, the clock halftime trigger, and autosave
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// Recover restores the pending snapshot
	Recover(ctx context.Context, input *RecoverInput) (*RecoverOutput, error)

	// DiscardRecovery drops the pending snapshot, keeping its config
	DiscardRecovery(ctx context.Context, input *DiscardRecoveryInput) (*DiscardRecoveryOutput, error)

	// Flush forces a snapshot write, used on shutdown
	Flush(ctx context.Context, input *FlushInput) (*FlushOutput, error)
}

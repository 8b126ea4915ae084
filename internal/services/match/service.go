package match

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fieldside/scorekeeper/internal/common/clock"
	"github.com/fieldside/scorekeeper/internal/common/uuid"
	"github.com/fieldside/scorekeeper/internal/countdown"
	"github.com/fieldside/scorekeeper/internal/derive"
	"github.com/fieldside/scorekeeper/internal/eventlog"
	"github.com/fieldside/scorekeeper/internal/export"
	"github.com/fieldside/scorekeeper/internal/models"
	rosterRepo "github.com/fieldside/scorekeeper/internal/repositories/roster"
	snapshotRepo "github.com/fieldside/scorekeeper/internal/repositories/snapshot"
	rosterClient "github.com/fieldside/scorekeeper/internal/roster"
	"github.com/fieldside/scorekeeper/internal/sink"
)

// service implements the Service interface
type service struct {
	snapshotRepo snapshotRepo.Repository
	rosterRepo   rosterRepo.Repository
	rosterClient rosterClient.Client
	sink         sink.Client
	exportDir    string
	clock        clock.Clock
	uuid         uuid.UUID

	// mu guards all mutable match state below. Handlers run
	// concurrently, but match semantics assume exactly one mutator at a
	// time.
	mu sync.Mutex

	matchConfig models.MatchConfig
	log         *eventlog.Log
	primary     *countdown.Clock
	secondary   *countdown.Clock

	teamA  string
	teamB  string
	roster models.Roster

	started  bool
	stoppage bool
	// which clocks the active stoppage paused, so deactivation resumes
	// only those
	stoppagePausedPrimary   bool
	stoppagePausedSecondary bool

	halftimeResolved     bool
	halftimeSuppressed   bool
	pendingClockHalftime bool

	dirty    bool
	lastSave time.Time
	pending  *models.Snapshot

	// submitting blocks mutations while Submit holds the state copy
	// outside the lock for the sink call and CSV write
	submitting bool
}

// New creates the match service and checks storage for a recoverable
// snapshot. A found snapshot is held pending until the operator accepts or
// refuses it; nothing is restored automatically.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SnapshotRepo == nil {
		return nil, ErrNilSnapshotRepo
	}
	if cfg.RosterRepo == nil {
		return nil, ErrNilRosterRepo
	}
	if cfg.RosterClient == nil {
		return nil, ErrNilRosterClient
	}
	if cfg.Sink == nil {
		return nil, ErrNilSink
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	matchConfig := models.DefaultMatchConfig()

	log, err := eventlog.New(&eventlog.Config{
		UUIDGenerator: cfg.UUIDGenerator,
	})
	if err != nil {
		return nil, err
	}

	primary, err := countdown.New(&countdown.Config{
		Default: matchConfig.MatchDuration(),
		Clock:   cfg.Clock,
	})
	if err != nil {
		return nil, err
	}

	secondary, err := countdown.New(&countdown.Config{
		Default: matchConfig.TimeoutBreak(),
		Clock:   cfg.Clock,
	})
	if err != nil {
		return nil, err
	}

	s := &service{
		snapshotRepo: cfg.SnapshotRepo,
		rosterRepo:   cfg.RosterRepo,
		rosterClient: cfg.RosterClient,
		sink:         cfg.Sink,
		exportDir:    exportDir,
		clock:        cfg.Clock,
		uuid:         cfg.UUIDGenerator,
		matchConfig:  matchConfig,
		log:          log,
		primary:      primary,
		secondary:    secondary,
		roster:       models.Roster{},
	}

	s.loadPendingSnapshot(ctx)

	return s, nil
}

// SelectTeams sets the two team names. Events already logged keep the
// match identifier they were created with.
func (s *service) SelectTeams(ctx context.Context, input *SelectTeamsInput) (*SelectTeamsOutput, error) {
	if input == nil || input.TeamA == "" || input.TeamB == "" {
		return nil, ErrTeamsNotSelected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}

	s.teamA = input.TeamA
	s.teamB = input.TeamB
	s.dirty = true

	return &SelectTeamsOutput{}, nil
}

// Setup replaces the match configuration wholesale and re-applies the
// clock defaults.
func (s *service) Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}
	if !input.Config.Valid() {
		return nil, ErrInvalidConfig
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}

	s.matchConfig = input.Config
	s.applyClockDefaultsLocked()
	s.dirty = true

	return &SetupOutput{}, nil
}

// applyClockDefaultsLocked pushes the configured durations onto both
// clocks. Before the match starts the primary also resets so the display
// shows the new duration immediately.
func (s *service) applyClockDefaultsLocked() {
	s.primary.SetDefault(s.matchConfig.MatchDuration())
	s.secondary.SetDefault(s.matchConfig.TimeoutBreak())

	if !s.started {
		s.primary.Reset(s.matchConfig.MatchDuration())
	}
}

// FetchRoster asks the provider for the mapping, caching it on success.
// On failure the last cached mapping serves, or an empty one if none is
// usable.
func (s *service) FetchRoster(ctx context.Context, input *FetchRosterInput) (*FetchRosterOutput, error) {
	out, fetchErr := s.rosterClient.Fetch(ctx, &rosterClient.FetchInput{})

	if fetchErr == nil {
		now := s.clock.Now()
		warning := ""
		if err := s.rosterRepo.Save(ctx, &rosterRepo.SaveInput{
			Roster: &models.CachedRoster{
				Teams:     out.Teams,
				FetchedAt: now,
			},
		}); err != nil {
			warning = fmt.Sprintf("failed to cache roster: %v", err)
		}

		s.mu.Lock()
		s.roster = out.Teams
		s.mu.Unlock()

		return &FetchRosterOutput{Teams: out.Teams, Warning: warning}, nil
	}

	cached, err := s.rosterRepo.Get(ctx, &rosterRepo.GetInput{Now: s.clock.Now()})
	if err != nil {
		if !errors.Is(err, rosterRepo.ErrNotFound) {
			return nil, err
		}

		s.mu.Lock()
		s.roster = models.Roster{}
		s.mu.Unlock()

		return &FetchRosterOutput{
			Teams:   models.Roster{},
			Warning: fmt.Sprintf("roster fetch failed and no cache available: %v", fetchErr),
		}, nil
	}

	s.mu.Lock()
	s.roster = cached.Teams
	s.mu.Unlock()

	return &FetchRosterOutput{
		Teams:     cached.Teams,
		FromCache: true,
		Warning:   fmt.Sprintf("roster fetch failed, using cached mapping: %v", fetchErr),
	}, nil
}

// StartMatch begins the match: appends the start event and starts the
// primary clock at the configured duration.
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}
	if s.started {
		return nil, ErrMatchAlreadyStarted
	}
	if s.teamA == "" || s.teamB == "" {
		return nil, ErrTeamsNotSelected
	}
	if s.stoppage {
		return nil, ErrStoppageActive
	}

	id := s.appendLocked(models.Event{
		Kind:     models.EventKindMatchStart,
		TeamSide: models.TeamSideNone,
	})

	s.started = true
	s.primary.Reset(s.matchConfig.MatchDuration())
	s.primary.Start()
	s.dirty = true

	return &StartMatchOutput{EventID: id}, nil
}

// AddScore records a goal, then evaluates the halftime auto-triggers and
// the score cap.
func (s *service) AddScore(ctx context.Context, input *AddScoreInput) (*AddScoreOutput, error) {
	if input == nil || (input.Side != models.TeamSideA && input.Side != models.TeamSideB) {
		return nil, ErrInvalidTeamSide
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}
	if !s.started {
		return nil, ErrMatchNotStarted
	}
	if s.stoppage {
		return nil, ErrStoppageActive
	}
	if derive.CapReached(s.log.All()) {
		return nil, ErrScoreCapReached
	}

	id := s.appendLocked(models.Event{
		Kind:     models.EventKindScore,
		TeamSide: input.Side,
		Scorer:   input.Scorer,
		Assistor: input.Assistor,
	})
	s.dirty = true

	events := s.log.All()
	a, b := derive.Scoreboard(events)

	capReached := derive.CapReached(events)
	if capReached {
		s.primary.Stop()
		s.secondary.Stop()
	}

	declared, reason := s.evaluateHalftimeTriggersLocked(events, a, b)

	return &AddScoreOutput{
		EventID:          id,
		TeamAScore:       a,
		TeamBScore:       b,
		HalftimeDeclared: declared,
		HalftimeReason:   reason,
		CapReached:       capReached,
	}, nil
}

// EditScore updates scorer and assistor in place; the scoreboard does not
// change.
func (s *service) EditScore(ctx context.Context, input *EditScoreInput) (*EditScoreOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEventNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}

	event := s.log.Get(input.EventID)
	if event == nil || event.Kind != models.EventKindScore {
		return nil, ErrEventNotFound
	}

	scorer := input.Scorer
	assistor := input.Assistor
	s.log.Update(input.EventID, eventlog.Update{
		Scorer:   &scorer,
		Assistor: &assistor,
	})
	s.dirty = true

	return &EditScoreOutput{}, nil
}

// DeleteScore removes a score event. Gender-sequence labels for all later
// scores renumber because they are derived, never stored; the halftime
// suppression flag clears once the leading score drops back below the
// trigger threshold.
func (s *service) DeleteScore(ctx context.Context, input *DeleteScoreInput) (*DeleteScoreOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEventNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}

	event := s.log.Get(input.EventID)
	if event == nil || event.Kind != models.EventKindScore {
		return nil, ErrEventNotFound
	}

	s.log.Remove(input.EventID)
	s.dirty = true

	a, b := derive.Scoreboard(s.log.All())
	if s.halftimeSuppressed && maxInt(a, b) < s.matchConfig.HalftimeScore {
		s.halftimeSuppressed = false
	}

	return &DeleteScoreOutput{TeamAScore: a, TeamBScore: b}, nil
}

// CallTimeout records a timeout for the side and starts the break clock.
func (s *service) CallTimeout(ctx context.Context, input *CallTimeoutInput) (*CallTimeoutOutput, error) {
	if input == nil || (input.Side != models.TeamSideA && input.Side != models.TeamSideB) {
		return nil, ErrInvalidTeamSide
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}
	if !s.started {
		return nil, ErrMatchNotStarted
	}
	if s.stoppage {
		return nil, ErrStoppageActive
	}

	balA, balB := derive.TimeoutBalances(s.matchConfig, s.log.All())
	balance := balA
	if input.Side == models.TeamSideB {
		balance = balB
	}
	if balance.Total <= 0 {
		return nil, ErrNoTimeoutsRemaining
	}
	if s.matchConfig.PerHalfLimited() && balance.Half <= 0 {
		return nil, ErrNoTimeoutsRemaining
	}

	id := s.appendLocked(models.Event{
		Kind:     models.EventKindTimeout,
		TeamSide: input.Side,
	})
	s.dirty = true

	s.secondary.Reset(s.matchConfig.TimeoutBreak())
	s.secondary.Start()

	balA, balB = derive.TimeoutBalances(s.matchConfig, s.log.All())
	return &CallTimeoutOutput{
		EventID:  id,
		BalanceA: balA,
		BalanceB: balB,
	}, nil
}

// ReassignTimeout moves a timeout event to the other side. The old side's
// balance restores and the new side's debits, both by recomputation.
func (s *service) ReassignTimeout(ctx context.Context, input *ReassignTimeoutInput) (*ReassignTimeoutOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEventNotFound
	}
	if input.NewSide != models.TeamSideA && input.NewSide != models.TeamSideB {
		return nil, ErrInvalidTeamSide
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}

	event := s.log.Get(input.EventID)
	if event == nil || event.Kind != models.EventKindTimeout {
		return nil, ErrEventNotFound
	}

	side := input.NewSide
	s.log.Update(input.EventID, eventlog.Update{TeamSide: &side})
	s.dirty = true

	balA, balB := derive.TimeoutBalances(s.matchConfig, s.log.All())
	return &ReassignTimeoutOutput{BalanceA: balA, BalanceB: balB}, nil
}

// DeclareHalftime declares halftime manually.
func (s *service) DeclareHalftime(ctx context.Context, input *DeclareHalftimeInput) (*DeclareHalftimeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}
	if !s.started {
		return nil, ErrMatchNotStarted
	}
	if derive.HalftimeDeclared(s.log.All()) {
		return nil, ErrHalftimeAlreadyDeclared
	}

	id := s.declareHalftimeLocked(models.HalftimeReasonManual)
	return &DeclareHalftimeOutput{EventID: id}, nil
}

// DeleteHalftime removes the most recent halftime event, reopening the
// not-yet-declared phase. Automatic triggers suppress only while their
// condition still holds, so the same score cannot immediately re-declare;
// a declaration deleted below the thresholds leaves the triggers eligible.
func (s *service) DeleteHalftime(ctx context.Context, input *DeleteHalftimeInput) (*DeleteHalftimeOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEventNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}

	if derive.LatestHalftimeID(s.log.All()) != input.EventID {
		return nil, ErrEventNotFound
	}

	deleted := s.log.Remove(input.EventID)
	s.halftimeResolved = false
	s.pendingClockHalftime = false

	a, b := derive.Scoreboard(s.log.All())
	suppress := maxInt(a, b) >= s.matchConfig.HalftimeScore
	if deleted.HalftimeReason == models.HalftimeReasonClock &&
		s.primary.Remaining() <= s.matchConfig.ClockHalftimeThreshold() {
		suppress = true
	}
	s.halftimeSuppressed = suppress
	s.dirty = true

	return &DeleteHalftimeOutput{}, nil
}

// ToggleStoppage is always legal. Activating pauses both clocks and logs
// a stoppage event; deactivating resumes only the clocks the stoppage
// paused, and only while the match is running below the cap.
func (s *service) ToggleStoppage(ctx context.Context, input *ToggleStoppageInput) (*ToggleStoppageOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}

	if !s.stoppage {
		s.stoppagePausedPrimary = s.primary.Running()
		s.stoppagePausedSecondary = s.secondary.Running()
		s.primary.Stop()
		s.secondary.Stop()
		s.stoppage = true

		id := s.appendLocked(models.Event{
			Kind:     models.EventKindStoppage,
			TeamSide: models.TeamSideNone,
		})
		s.dirty = true

		return &ToggleStoppageOutput{Active: true, EventID: id}, nil
	}

	s.stoppage = false
	if s.started && !derive.CapReached(s.log.All()) {
		if s.stoppagePausedPrimary {
			s.primary.Start()
		}
		if s.stoppagePausedSecondary {
			s.secondary.Start()
		}
	}
	s.stoppagePausedPrimary = false
	s.stoppagePausedSecondary = false
	s.dirty = true

	return &ToggleStoppageOutput{Active: false}, nil
}

// Submit ships the log to the remote sink, always writes the local CSV,
// and resets to a fresh not-started match keeping teams, roster, and
// configuration. A sink failure is only a warning.
func (s *service) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	if s.log.Len() == 0 {
		s.mu.Unlock()
		return nil, ErrNoEventsLogged
	}

	events := s.log.All()
	teamA := s.teamA
	teamB := s.teamB
	matchID := s.matchIDLocked()
	s.submitting = true
	s.mu.Unlock()

	warning := ""
	batch := buildBatch(matchID, s.clock.Now(), events, teamA, teamB)
	if err := s.sink.Submit(ctx, &sink.SubmitInput{Batch: batch}); err != nil {
		warning = fmt.Sprintf("remote submission failed: %v", err)
	}

	// the local export runs regardless of the remote outcome
	csvPath, err := export.Write(s.exportDir, matchID, events, teamA, teamB)
	if err != nil {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.submitting = false
	s.resetMatchLocked()
	s.dirty = true
	s.mu.Unlock()

	// replace the stored snapshot with the fresh baseline so a crash after
	// submission does not offer the submitted match for recovery
	_, _ = s.Flush(ctx, &FlushInput{})

	return &SubmitOutput{CSVPath: csvPath, Warning: warning}, nil
}

// State assembles everything the presentation layer renders, derived from
// the event log plus configuration.
func (s *service) State(ctx context.Context, input *StateInput) (*StateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.log.All()
	a, b := derive.Scoreboard(events)
	balA, balB := derive.TimeoutBalances(s.matchConfig, events)
	labels := derive.GenderLabels(events, s.matchConfig.GenderStart)

	views := make([]EventView, 0, len(events))
	for _, e := range events {
		team := ""
		switch e.TeamSide {
		case models.TeamSideA:
			team = s.teamA
		case models.TeamSideB:
			team = s.teamB
		}
		views = append(views, EventView{
			Event:       e,
			GenderLabel: labels[e.ID],
			Team:        team,
		})
	}

	reason := models.HalftimeReason("")
	for _, e := range events {
		if e.Kind == models.EventKindHalftime {
			reason = e.HalftimeReason
		}
	}

	return &StateOutput{
		TeamA:              s.teamA,
		TeamB:              s.teamB,
		Roster:             s.roster,
		Config:             s.matchConfig,
		Started:            s.started,
		Stoppage:           s.stoppage,
		CapReached:         derive.CapReached(events),
		HalftimeDeclared:   derive.HalftimeDeclared(events),
		HalftimeReason:     reason,
		PendingRecovery:    s.pending != nil,
		TeamAScore:         a,
		TeamBScore:         b,
		BalanceA:           balA,
		BalanceB:           balB,
		PrimaryRunning:     s.primary.Running(),
		PrimaryRemaining:   s.primary.Remaining(),
		SecondaryRunning:   s.secondary.Running(),
		SecondaryRemaining: s.secondary.Remaining(),
		Events:             views,
	}, nil
}

// appendLocked stamps and appends an event, returning its ID.
func (s *service) appendLocked(event models.Event) string {
	event.MatchID = s.matchIDLocked()
	event.Timestamp = s.clock.Now()
	return s.log.Append(event)
}

// matchIDLocked derives the match identifier from the current team names.
func (s *service) matchIDLocked() string {
	return s.teamA + " vs " + s.teamB
}

// resetMatchLocked returns to a fresh not-started match, retaining team
// selection, roster, and configuration.
func (s *service) resetMatchLocked() {
	s.log.Clear()
	s.started = false
	s.stoppage = false
	s.stoppagePausedPrimary = false
	s.stoppagePausedSecondary = false
	s.halftimeResolved = false
	s.halftimeSuppressed = false
	s.pendingClockHalftime = false
	s.primary.Reset(s.matchConfig.MatchDuration())
	s.secondary.Reset(s.matchConfig.TimeoutBreak())
}

// buildBatch shapes the sink payload from the event log.
func buildBatch(matchID string, now time.Time, events []models.Event, teamA, teamB string) *sink.Batch {
	rows := export.Rows(events, teamA, teamB)
	logs := make([]sink.LogEntry, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, sink.LogEntry{
			MatchID:   row.GameID,
			Time:      row.Time,
			EventType: row.EventType,
			Team:      row.Team,
			Score:     row.Score,
			Assist:    row.Assist,
		})
	}

	return &sink.Batch{
		MatchID: matchID,
		Date:    now.Format("2006-01-02"),
		Logs:    logs,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

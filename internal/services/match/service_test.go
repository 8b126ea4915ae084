package match

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmocks "github.com/fieldside/scorekeeper/internal/common/clock/mocks"
	"github.com/fieldside/scorekeeper/internal/derive"
	uuidmocks "github.com/fieldside/scorekeeper/internal/common/uuid/mocks"
	"github.com/fieldside/scorekeeper/internal/models"
	rosterrepo "github.com/fieldside/scorekeeper/internal/repositories/roster"
	rosterrepomocks "github.com/fieldside/scorekeeper/internal/repositories/roster/mocks"
	snapshotrepo "github.com/fieldside/scorekeeper/internal/repositories/snapshot"
	snapshotmocks "github.com/fieldside/scorekeeper/internal/repositories/snapshot/mocks"
	rosterclient "github.com/fieldside/scorekeeper/internal/roster"
	rosterclientmocks "github.com/fieldside/scorekeeper/internal/roster/mocks"
	sinkmocks "github.com/fieldside/scorekeeper/internal/sink/mocks"
)

type matchServiceSuite struct {
	suite.Suite

	ctrl             *gomock.Controller
	mockSnapshotRepo *snapshotmocks.MockRepository
	mockRosterRepo   *rosterrepomocks.MockRepository
	mockRosterClient *rosterclientmocks.MockClient
	mockSink         *sinkmocks.MockClient
	mockClock        *clockmocks.MockClock
	mockUUID         *uuidmocks.MockUUID

	now       time.Time
	exportDir string
	ctx       context.Context
	svc       *service
}

func TestMatchServiceSuite(t *testing.T) {
	suite.Run(t, new(matchServiceSuite))
}

func (s *matchServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSnapshotRepo = snapshotmocks.NewMockRepository(s.ctrl)
	s.mockRosterRepo = rosterrepomocks.NewMockRepository(s.ctrl)
	s.mockRosterClient = rosterclientmocks.NewMockClient(s.ctrl)
	s.mockSink = sinkmocks.NewMockClient(s.ctrl)
	s.mockClock = clockmocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidmocks.NewMockUUID(s.ctrl)

	s.now = time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	seq := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		seq++
		return fmt.Sprintf("uuid-%d", seq)
	}).AnyTimes()

	s.exportDir = s.T().TempDir()
	s.ctx = context.Background()
	s.svc = s.newService(nil)
}

func (s *matchServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newService builds a service whose startup snapshot lookup returns the
// given snapshot, or not-found when nil.
func (s *matchServiceSuite) newService(snap *models.Snapshot) *service {
	if snap == nil {
		s.mockSnapshotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(nil, snapshotrepo.ErrNotFound)
	} else {
		s.mockSnapshotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(snap, nil)
	}

	svc, err := New(s.ctx, &Config{
		SnapshotRepo:  s.mockSnapshotRepo,
		RosterRepo:    s.mockRosterRepo,
		RosterClient:  s.mockRosterClient,
		Sink:          s.mockSink,
		ExportDir:     s.exportDir,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return svc
}

func (s *matchServiceSuite) startMatch() {
	_, err := s.svc.SelectTeams(s.ctx, &SelectTeamsInput{TeamA: "Red", TeamB: "Blue"})
	s.Require().NoError(err)
	_, err = s.svc.StartMatch(s.ctx, &StartMatchInput{})
	s.Require().NoError(err)
}

func (s *matchServiceSuite) setup(mutate func(*models.MatchConfig)) {
	cfg := models.DefaultMatchConfig()
	mutate(&cfg)
	_, err := s.svc.Setup(s.ctx, &SetupInput{Config: cfg})
	s.Require().NoError(err)
}

func (s *matchServiceSuite) addScore(side models.TeamSide) *AddScoreOutput {
	out, err := s.svc.AddScore(s.ctx, &AddScoreInput{
		Side:     side,
		Scorer:   "Player",
		Assistor: models.AssistNone,
	})
	s.Require().NoError(err)
	return out
}

func (s *matchServiceSuite) state() *StateOutput {
	out, err := s.svc.State(s.ctx, &StateInput{})
	s.Require().NoError(err)
	return out
}

func (s *matchServiceSuite) TestNewValidatesConfig() {
	_, err := New(s.ctx, nil)
	s.Assert().ErrorIs(err, ErrNilConfig)

	_, err = New(s.ctx, &Config{})
	s.Assert().ErrorIs(err, ErrNilSnapshotRepo)
}

func (s *matchServiceSuite) TestStartMatchRequiresTeams() {
	_, err := s.svc.StartMatch(s.ctx, &StartMatchInput{})
	s.Assert().ErrorIs(err, ErrTeamsNotSelected)

	s.startMatch()
	s.Assert().True(s.svc.primary.Running())

	_, err = s.svc.StartMatch(s.ctx, &StartMatchInput{})
	s.Assert().ErrorIs(err, ErrMatchAlreadyStarted)
}

func (s *matchServiceSuite) TestAddScoreRequiresStartedMatch() {
	_, err := s.svc.AddScore(s.ctx, &AddScoreInput{Side: models.TeamSideA})
	s.Assert().ErrorIs(err, ErrMatchNotStarted)
}

func (s *matchServiceSuite) TestScoringRunWithGenderLabels() {
	s.setup(func(cfg *models.MatchConfig) {
		cfg.GenderStart = models.GenderStartM
	})
	s.startMatch()

	for i := 0; i < 7; i++ {
		out := s.addScore(models.TeamSideA)
		s.Assert().False(out.HalftimeDeclared)
	}

	state := s.state()
	s.Assert().Equal(7, state.TeamAScore)
	s.Assert().Equal(0, state.TeamBScore)
	s.Assert().False(state.HalftimeDeclared)

	var labels []string
	for _, e := range state.Events {
		if e.Kind == models.EventKindScore {
			labels = append(labels, e.GenderLabel)
		}
	}
	s.Assert().Equal([]string{"M", "F", "F", "M", "M", "F", "F"}, labels)
}

func (s *matchServiceSuite) TestEighthScoreDeclaresHalftime() {
	s.startMatch()

	for i := 0; i < 7; i++ {
		s.addScore(models.TeamSideA)
	}

	out := s.addScore(models.TeamSideA)
	s.Assert().True(out.HalftimeDeclared)
	s.Assert().Equal(models.HalftimeReasonScore, out.HalftimeReason)
	s.Assert().True(s.svc.secondary.Running())

	// further scores never redeclare
	out = s.addScore(models.TeamSideB)
	s.Assert().False(out.HalftimeDeclared)

	_, err := s.svc.DeclareHalftime(s.ctx, &DeclareHalftimeInput{})
	s.Assert().ErrorIs(err, ErrHalftimeAlreadyDeclared)
}

func (s *matchServiceSuite) TestDeleteScoreRenumbersLabels() {
	s.setup(func(cfg *models.MatchConfig) {
		cfg.GenderStart = models.GenderStartM
	})
	s.startMatch()

	first := s.addScore(models.TeamSideA)
	s.addScore(models.TeamSideB)
	s.addScore(models.TeamSideA)

	_, err := s.svc.DeleteScore(s.ctx, &DeleteScoreInput{EventID: first.EventID})
	s.Require().NoError(err)

	var labels []string
	for _, e := range s.state().Events {
		if e.Kind == models.EventKindScore {
			labels = append(labels, e.GenderLabel)
		}
	}
	s.Assert().Equal([]string{"M", "F"}, labels)
}

func (s *matchServiceSuite) TestHalftimeDeletionSuppressesRetrigger() {
	s.setup(func(cfg *models.MatchConfig) {
		cfg.HalftimeScore = 2
	})
	s.startMatch()

	s.addScore(models.TeamSideA)
	out := s.addScore(models.TeamSideA)
	s.Require().True(out.HalftimeDeclared)

	var halftimeID string
	scoreIDs := []string{}
	for _, e := range s.state().Events {
		switch e.Kind {
		case models.EventKindHalftime:
			halftimeID = e.ID
		case models.EventKindScore:
			scoreIDs = append(scoreIDs, e.ID)
		}
	}
	s.Require().NotEmpty(halftimeID)

	_, err := s.svc.DeleteHalftime(s.ctx, &DeleteHalftimeInput{EventID: "bogus"})
	s.Assert().ErrorIs(err, ErrEventNotFound)

	_, err = s.svc.DeleteHalftime(s.ctx, &DeleteHalftimeInput{EventID: halftimeID})
	s.Require().NoError(err)

	// the score condition still holds, so the trigger stays quiet
	out = s.addScore(models.TeamSideA)
	s.Assert().False(out.HalftimeDeclared)

	// dropping below the threshold re-arms it
	_, err = s.svc.DeleteScore(s.ctx, &DeleteScoreInput{EventID: scoreIDs[0]})
	s.Require().NoError(err)
	_, err = s.svc.DeleteScore(s.ctx, &DeleteScoreInput{EventID: scoreIDs[1]})
	s.Require().NoError(err)

	out = s.addScore(models.TeamSideA)
	s.Assert().True(out.HalftimeDeclared)
}

func (s *matchServiceSuite) TestDeletedManualHalftimeKeepsTriggersEligible() {
	s.startMatch()

	// manual declaration at 0-0, immediately taken back
	declared, err := s.svc.DeclareHalftime(s.ctx, &DeclareHalftimeInput{})
	s.Require().NoError(err)
	_, err = s.svc.DeleteHalftime(s.ctx, &DeleteHalftimeInput{EventID: declared.EventID})
	s.Require().NoError(err)
	s.Assert().False(s.svc.halftimeSuppressed)

	// the score trigger must still fire at the threshold
	for i := 0; i < 7; i++ {
		out := s.addScore(models.TeamSideA)
		s.Assert().False(out.HalftimeDeclared)
	}
	out := s.addScore(models.TeamSideA)
	s.Assert().True(out.HalftimeDeclared)
	s.Assert().Equal(models.HalftimeReasonScore, out.HalftimeReason)
}

func (s *matchServiceSuite) TestDeletedClockHalftimeStaysSuppressed() {
	s.startMatch()

	s.now = s.now.Add(36 * time.Minute)
	s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	_, err := s.svc.Tick(s.ctx, &TickInput{})
	s.Require().NoError(err)

	out := s.addScore(models.TeamSideA)
	s.Require().Equal(models.HalftimeReasonClock, out.HalftimeReason)

	halftimeID := derive.LatestHalftimeID(s.svc.log.All())
	_, err = s.svc.DeleteHalftime(s.ctx, &DeleteHalftimeInput{EventID: halftimeID})
	s.Require().NoError(err)
	s.Assert().True(s.svc.halftimeSuppressed)

	// the clock condition still holds, so neither a tick nor a score
	// re-declares
	_, err = s.svc.Tick(s.ctx, &TickInput{})
	s.Require().NoError(err)
	s.Assert().False(s.svc.pendingClockHalftime)

	out = s.addScore(models.TeamSideA)
	s.Assert().False(out.HalftimeDeclared)
}

func (s *matchServiceSuite) TestClockTriggerDefersToNextScore() {
	s.startMatch()

	// default config arms the trigger once 35 of 75 minutes have elapsed
	s.now = s.now.Add(36 * time.Minute)
	s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	_, err := s.svc.Tick(s.ctx, &TickInput{})
	s.Require().NoError(err)
	s.Assert().True(s.svc.pendingClockHalftime)

	out := s.addScore(models.TeamSideA)
	s.Assert().True(out.HalftimeDeclared)
	s.Assert().Equal(models.HalftimeReasonClock, out.HalftimeReason)
}

func (s *matchServiceSuite) TestScoreCapLocksClocks() {
	s.startMatch()

	for i := 0; i < 14; i++ {
		s.addScore(models.TeamSideA)
	}
	out := s.addScore(models.TeamSideA)
	s.Assert().True(out.CapReached)
	s.Assert().False(s.svc.primary.Running())

	_, err := s.svc.AddScore(s.ctx, &AddScoreInput{Side: models.TeamSideA})
	s.Assert().ErrorIs(err, ErrScoreCapReached)
}

func (s *matchServiceSuite) TestCallTimeoutDebitsAndRejectsAtZero() {
	s.setup(func(cfg *models.MatchConfig) {
		cfg.TimeoutsPerTeam = 1
		cfg.TimeoutsPerHalf = 1
	})
	s.startMatch()

	out, err := s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Require().NoError(err)
	s.Assert().Equal(0, out.BalanceA.Total)
	s.Assert().Equal(1, out.BalanceB.Total)
	s.Assert().True(s.svc.secondary.Running())

	_, err = s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Assert().ErrorIs(err, ErrNoTimeoutsRemaining)
}

func (s *matchServiceSuite) TestHalftimeRestoresPerHalfAllotment() {
	s.startMatch()

	// default config allows 2 per half of 4 total
	_, err := s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Require().NoError(err)
	out, err := s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Require().NoError(err)
	s.Assert().Equal(0, out.BalanceA.Half)
	s.Assert().Equal(2, out.BalanceA.Total)

	_, err = s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Assert().ErrorIs(err, ErrNoTimeoutsRemaining)

	_, err = s.svc.DeclareHalftime(s.ctx, &DeclareHalftimeInput{})
	s.Require().NoError(err)

	out, err = s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.BalanceA.Total)
	s.Assert().Equal(1, out.BalanceA.Half)
}

func (s *matchServiceSuite) TestReassignTimeoutMovesBalance() {
	s.startMatch()

	out, err := s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Require().NoError(err)
	s.Assert().Equal(3, out.BalanceA.Total)

	moved, err := s.svc.ReassignTimeout(s.ctx, &ReassignTimeoutInput{
		EventID: out.EventID,
		NewSide: models.TeamSideB,
	})
	s.Require().NoError(err)
	s.Assert().Equal(4, moved.BalanceA.Total)
	s.Assert().Equal(3, moved.BalanceB.Total)
}

func (s *matchServiceSuite) TestStoppagePausesAndResumesClocks() {
	s.startMatch()

	s.now = s.now.Add(10 * time.Minute)
	out, err := s.svc.ToggleStoppage(s.ctx, &ToggleStoppageInput{})
	s.Require().NoError(err)
	s.Assert().True(out.Active)
	s.Assert().NotEmpty(out.EventID)
	s.Assert().False(s.svc.primary.Running())

	remaining := s.svc.primary.Remaining()
	s.Assert().Equal(65*time.Minute, remaining)

	_, err = s.svc.AddScore(s.ctx, &AddScoreInput{Side: models.TeamSideA})
	s.Assert().ErrorIs(err, ErrStoppageActive)
	_, err = s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Assert().ErrorIs(err, ErrStoppageActive)

	// time passing during the stoppage does not drain the clock
	s.now = s.now.Add(5 * time.Minute)
	s.Assert().Equal(remaining, s.svc.primary.Remaining())

	out, err = s.svc.ToggleStoppage(s.ctx, &ToggleStoppageInput{})
	s.Require().NoError(err)
	s.Assert().False(out.Active)
	s.Assert().True(s.svc.primary.Running())
	s.Assert().Equal(remaining, s.svc.primary.Remaining())
}

func (s *matchServiceSuite) TestStoppageResumesOnlyPausedClocks() {
	s.startMatch()
	s.svc.primary.Stop()

	_, err := s.svc.ToggleStoppage(s.ctx, &ToggleStoppageInput{})
	s.Require().NoError(err)
	_, err = s.svc.ToggleStoppage(s.ctx, &ToggleStoppageInput{})
	s.Require().NoError(err)

	// the primary was already stopped before the stoppage, so it stays so
	s.Assert().False(s.svc.primary.Running())
}

func (s *matchServiceSuite) TestTickAutosavesDebounced() {
	_, err := s.svc.SelectTeams(s.ctx, &SelectTeamsInput{TeamA: "Red", TeamB: "Blue"})
	s.Require().NoError(err)

	s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	out, err := s.svc.Tick(s.ctx, &TickInput{})
	s.Require().NoError(err)
	s.Assert().Empty(out.Warning)

	// clean state, no second write
	_, err = s.svc.Tick(s.ctx, &TickInput{})
	s.Require().NoError(err)
}

func (s *matchServiceSuite) TestSaveEvictsExpiredRosterAndRetries() {
	storeFull := errors.New("store full")
	gomock.InOrder(
		s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeFull),
		s.mockRosterRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(true, nil),
		s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	out, err := s.svc.Flush(s.ctx, &FlushInput{})
	s.Require().NoError(err)
	s.Assert().Empty(out.Warning)
}

func (s *matchServiceSuite) TestSaveFailureSurfacesWarning() {
	storeFull := errors.New("store full")
	s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeFull)
	s.mockRosterRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(false, nil)

	out, err := s.svc.Flush(s.ctx, &FlushInput{})
	s.Require().NoError(err)
	s.Assert().Contains(out.Warning, "store full")
}

func (s *matchServiceSuite) TestFetchRosterCachesOnSuccess() {
	teams := models.Roster{"Red": {"Alice"}, "Blue": {"Bob"}}
	s.mockRosterClient.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(&rosterclient.FetchOutput{Teams: teams}, nil)
	s.mockRosterRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.svc.FetchRoster(s.ctx, &FetchRosterInput{})
	s.Require().NoError(err)
	s.Assert().Equal(teams, out.Teams)
	s.Assert().False(out.FromCache)
	s.Assert().Equal(teams, s.state().Roster)
}

func (s *matchServiceSuite) TestFetchRosterFallsBackToCache() {
	teams := models.Roster{"Red": {"Alice"}}
	s.mockRosterClient.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider down"))
	s.mockRosterRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(&models.CachedRoster{Teams: teams, FetchedAt: s.now}, nil)

	out, err := s.svc.FetchRoster(s.ctx, &FetchRosterInput{})
	s.Require().NoError(err)
	s.Assert().True(out.FromCache)
	s.Assert().Equal(teams, out.Teams)
	s.Assert().Contains(out.Warning, "provider down")
}

func (s *matchServiceSuite) TestFetchRosterNoCacheReturnsEmpty() {
	s.mockRosterClient.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider down"))
	s.mockRosterRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, rosterrepo.ErrNotFound)

	out, err := s.svc.FetchRoster(s.ctx, &FetchRosterInput{})
	s.Require().NoError(err)
	s.Assert().Empty(out.Teams)
	s.Assert().NotEmpty(out.Warning)
}

func (s *matchServiceSuite) TestSubmitExportsAndResets() {
	s.startMatch()
	s.addScore(models.TeamSideA)

	s.mockSink.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)
	s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.svc.Submit(s.ctx, &SubmitInput{})
	s.Require().NoError(err)
	s.Assert().Empty(out.Warning)

	content, err := os.ReadFile(out.CSVPath)
	s.Require().NoError(err)
	s.Assert().Contains(string(content), "Red vs Blue")

	state := s.state()
	s.Assert().False(state.Started)
	s.Assert().Empty(state.Events)
	s.Assert().Equal(0, state.TeamAScore)
	s.Assert().Equal("Red", state.TeamA)
	s.Assert().Equal("Blue", state.TeamB)
}

func (s *matchServiceSuite) TestSubmitSinkFailureStillExports() {
	s.startMatch()
	s.addScore(models.TeamSideA)

	s.mockSink.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(errors.New("endpoint unreachable"))
	s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.svc.Submit(s.ctx, &SubmitInput{})
	s.Require().NoError(err)
	s.Assert().Contains(out.Warning, "endpoint unreachable")
	s.Assert().FileExists(out.CSVPath)
}

func (s *matchServiceSuite) TestMutationsRejectedWhileSubmitting() {
	s.startMatch()
	s.addScore(models.TeamSideA)

	s.svc.mu.Lock()
	s.svc.submitting = true
	s.svc.mu.Unlock()

	_, err := s.svc.AddScore(s.ctx, &AddScoreInput{Side: models.TeamSideA})
	s.Assert().ErrorIs(err, ErrSubmissionInProgress)
	_, err = s.svc.CallTimeout(s.ctx, &CallTimeoutInput{Side: models.TeamSideA})
	s.Assert().ErrorIs(err, ErrSubmissionInProgress)
	_, err = s.svc.ToggleStoppage(s.ctx, &ToggleStoppageInput{})
	s.Assert().ErrorIs(err, ErrSubmissionInProgress)
	_, err = s.svc.Submit(s.ctx, &SubmitInput{})
	s.Assert().ErrorIs(err, ErrSubmissionInProgress)

	s.svc.mu.Lock()
	s.svc.submitting = false
	s.svc.mu.Unlock()

	// the window closes and mutations flow again
	out := s.addScore(models.TeamSideB)
	s.Assert().Equal(1, out.TeamBScore)
}

func (s *matchServiceSuite) TestSubmitClearsSubmittingFlag() {
	s.startMatch()
	s.addScore(models.TeamSideA)

	s.mockSink.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)
	s.mockSnapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.svc.Submit(s.ctx, &SubmitInput{})
	s.Require().NoError(err)
	s.Assert().False(s.svc.submitting)
}

func (s *matchServiceSuite) TestSubmitEmptyLogRejected() {
	_, err := s.svc.Submit(s.ctx, &SubmitInput{})
	s.Assert().ErrorIs(err, ErrNoEventsLogged)
}

func (s *matchServiceSuite) TestRecoverRestoresMatch() {
	s.startMatch()
	s.addScore(models.TeamSideA)
	s.addScore(models.TeamSideB)
	s.addScore(models.TeamSideA)
	snap := s.svc.snapshotLocked(s.now)

	restored := s.newService(snap)
	s.Assert().True(restored.pending != nil)

	out, err := restored.Recover(s.ctx, &RecoverInput{})
	s.Require().NoError(err)
	s.Assert().Equal(4, out.Events)

	state, err := restored.State(s.ctx, &StateInput{})
	s.Require().NoError(err)
	s.Assert().Equal(2, state.TeamAScore)
	s.Assert().Equal(1, state.TeamBScore)
	s.Assert().True(state.Started)
	s.Assert().False(state.PendingRecovery)

	// the restored primary clock keeps counting from its deadline
	s.Assert().True(restored.primary.Running())

	_, err = restored.Recover(s.ctx, &RecoverInput{})
	s.Assert().ErrorIs(err, ErrNoRecoveryPending)
}

func (s *matchServiceSuite) TestStaleSnapshotIsDropped() {
	s.startMatch()
	s.addScore(models.TeamSideA)
	snap := s.svc.snapshotLocked(s.now.Add(-25 * time.Hour))

	s.mockSnapshotRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	restored := s.newService(snap)
	s.Assert().Nil(restored.pending)
}

func (s *matchServiceSuite) TestDiscardRecoveryKeepsConfigAndTeams() {
	s.setup(func(cfg *models.MatchConfig) {
		cfg.HalftimeScore = 10
	})
	s.startMatch()
	s.addScore(models.TeamSideA)
	snap := s.svc.snapshotLocked(s.now)

	restored := s.newService(snap)
	s.mockSnapshotRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	_, err := restored.DiscardRecovery(s.ctx, &DiscardRecoveryInput{})
	s.Require().NoError(err)

	state, err := restored.State(s.ctx, &StateInput{})
	s.Require().NoError(err)
	s.Assert().False(state.Started)
	s.Assert().Empty(state.Events)
	s.Assert().Equal("Red", state.TeamA)
	s.Assert().Equal(10, state.Config.HalftimeScore)
}

func (s *matchServiceSuite) TestSetupRejectsInvalidConfig() {
	cfg := models.DefaultMatchConfig()
	cfg.MatchMinutes = 0

	_, err := s.svc.Setup(s.ctx, &SetupInput{Config: cfg})
	s.Assert().ErrorIs(err, ErrInvalidConfig)
}

func (s *matchServiceSuite) TestEditScoreUpdatesAttribution() {
	s.startMatch()
	out := s.addScore(models.TeamSideA)

	_, err := s.svc.EditScore(s.ctx, &EditScoreInput{
		EventID:  out.EventID,
		Scorer:   "Carol",
		Assistor: models.AssistCallahan,
	})
	s.Require().NoError(err)

	event := s.svc.log.Get(out.EventID)
	s.Require().NotNil(event)
	s.Assert().Equal("Carol", event.Scorer)
	s.Assert().Equal(models.AssistCallahan, event.Assistor)

	_, err = s.svc.EditScore(s.ctx, &EditScoreInput{EventID: "bogus"})
	s.Assert().ErrorIs(err, ErrEventNotFound)
}

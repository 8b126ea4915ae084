package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldside/scorekeeper/internal/derive"
	"github.com/fieldside/scorekeeper/internal/models"
	rosterRepo "github.com/fieldside/scorekeeper/internal/repositories/roster"
	snapshotRepo "github.com/fieldside/scorekeeper/internal/repositories/snapshot"
)

const (
	// autosaveInterval is the minimum gap between dirty-state writes
	autosaveInterval = 2 * time.Second

	// snapshotMaxAge is how old a stored snapshot may be and still be
	// offered for recovery
	snapshotMaxAge = 24 * time.Hour
)

// loadPendingSnapshot checks storage for a restorable snapshot at startup.
// A usable one is held pending for the operator to accept or refuse; stale
// or empty ones are dropped silently.
func (s *service) loadPendingSnapshot(ctx context.Context) {
	snap, err := s.snapshotRepo.Get(ctx, &snapshotRepo.GetInput{})
	if err != nil {
		return
	}

	if s.clock.Now().Sub(snap.SavedAt) > snapshotMaxAge {
		_ = s.snapshotRepo.Delete(ctx, &snapshotRepo.DeleteInput{})
		return
	}

	// a snapshot with no events carries nothing worth prompting about,
	// but its configuration is still the operator's last setup
	if len(snap.Events) == 0 {
		if snap.Config.Valid() {
			s.matchConfig = snap.Config
			s.applyClockDefaultsLocked()
		}
		s.teamA = snap.TeamA
		s.teamB = snap.TeamB
		return
	}

	s.pending = snap
}

// Recover restores the pending snapshot. Scores, labels, and balances come
// back by recomputation from the restored event log; only the raw inputs
// are taken from storage.
func (s *service) Recover(ctx context.Context, input *RecoverInput) (*RecoverOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}
	if s.pending == nil {
		return nil, ErrNoRecoveryPending
	}

	snap := s.pending
	s.pending = nil

	if snap.Config.Valid() {
		s.matchConfig = snap.Config
	}
	s.teamA = snap.TeamA
	s.teamB = snap.TeamB
	s.log.Replace(snap.Events, snap.NextSeq)
	s.started = snap.Started
	s.stoppage = snap.Stoppage
	s.stoppagePausedPrimary = snap.StoppagePausedPrimary
	s.stoppagePausedSecondary = snap.StoppagePausedSecondary
	s.halftimeResolved = snap.HalftimeResolved
	s.halftimeSuppressed = snap.HalftimeSuppressed
	s.pendingClockHalftime = snap.PendingClockHalftime

	s.primary.Restore(snap.Primary)
	s.secondary.Restore(snap.Secondary)

	s.dirty = true

	return &RecoverOutput{Events: s.log.Len()}, nil
}

// DiscardRecovery refuses the pending snapshot. The stored blob is deleted
// so the prompt never reappears, but its configuration and team selection
// carry over into the fresh match.
func (s *service) DiscardRecovery(ctx context.Context, input *DiscardRecoveryInput) (*DiscardRecoveryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrSubmissionInProgress
	}
	if s.pending == nil {
		return nil, ErrNoRecoveryPending
	}

	snap := s.pending
	s.pending = nil

	if snap.Config.Valid() {
		s.matchConfig = snap.Config
		s.applyClockDefaultsLocked()
	}
	s.teamA = snap.TeamA
	s.teamB = snap.TeamB

	if err := s.snapshotRepo.Delete(ctx, &snapshotRepo.DeleteInput{}); err != nil {
		return &DiscardRecoveryOutput{}, nil
	}

	return &DiscardRecoveryOutput{}, nil
}

// Tick drives both countdown clocks, arms the clock halftime trigger, and
// runs the debounced autosave. Callers invoke it on a short interval; the
// deadline-based clocks make the exact cadence irrelevant.
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	s.mu.Lock()

	out := &TickOutput{}
	out.PrimaryExpired = s.primary.Tick()
	out.SecondaryExpired = s.secondary.Tick()
	out.Changed = out.PrimaryExpired || out.SecondaryExpired ||
		s.primary.Running() || s.secondary.Running()

	s.armClockHalftimeLocked()

	var snap *models.Snapshot
	now := s.clock.Now()
	if s.dirty && now.Sub(s.lastSave) >= autosaveInterval {
		snap = s.snapshotLocked(now)
		s.dirty = false
		s.lastSave = now
	}
	s.mu.Unlock()

	if snap != nil {
		if err := s.save(ctx, snap); err != nil {
			out.Warning = fmt.Sprintf("autosave failed: %v", err)
		}
	}

	return out, nil
}

// Flush forces an immediate snapshot write regardless of the debounce.
// Used on shutdown and after submission.
func (s *service) Flush(ctx context.Context, input *FlushInput) (*FlushOutput, error) {
	s.mu.Lock()
	now := s.clock.Now()
	snap := s.snapshotLocked(now)
	s.dirty = false
	s.lastSave = now
	s.mu.Unlock()

	if err := s.save(ctx, snap); err != nil {
		return &FlushOutput{
			Warning: fmt.Sprintf("snapshot write failed: %v", err),
		}, nil
	}

	return &FlushOutput{}, nil
}

// snapshotLocked assembles the persistable state. Caller holds mu.
func (s *service) snapshotLocked(now time.Time) *models.Snapshot {
	events := s.log.All()
	balA, balB := derive.TimeoutBalances(s.matchConfig, events)

	return &models.Snapshot{
		Config:                  s.matchConfig,
		TeamA:                   s.teamA,
		TeamB:                   s.teamB,
		Events:                  events,
		NextSeq:                 s.log.NextSeq(),
		Primary:                 s.primary.State(),
		Secondary:               s.secondary.State(),
		BalanceA:                balA,
		BalanceB:                balB,
		Started:                 s.started,
		Stoppage:                s.stoppage,
		StoppagePausedPrimary:   s.stoppagePausedPrimary,
		StoppagePausedSecondary: s.stoppagePausedSecondary,
		HalftimeResolved:        s.halftimeResolved,
		HalftimeSuppressed:      s.halftimeSuppressed,
		PendingClockHalftime:    s.pendingClockHalftime,
		SavedAt:                 now,
	}
}

// save writes the snapshot. A failed write triggers one eviction of the
// expired roster cache followed by a single retry, on the theory that the
// store is full of stale data rather than broken.
func (s *service) save(ctx context.Context, snap *models.Snapshot) error {
	err := s.snapshotRepo.Save(ctx, &snapshotRepo.SaveInput{Snapshot: snap})
	if err == nil {
		return nil
	}

	evicted, evictErr := s.rosterRepo.DeleteExpired(ctx, &rosterRepo.DeleteExpiredInput{
		Now: s.clock.Now(),
	})
	if evictErr != nil || !evicted {
		return err
	}

	retryErr := s.snapshotRepo.Save(ctx, &snapshotRepo.SaveInput{Snapshot: snap})
	if retryErr != nil {
		return errors.Join(err, retryErr)
	}
	return nil
}

package match

import (
	"github.com/fieldside/scorekeeper/internal/derive"
	"github.com/fieldside/scorekeeper/internal/models"
)

// declareHalftimeLocked appends the halftime event with the given reason,
// marks halftime resolved, and starts the break clock. Caller holds mu.
func (s *service) declareHalftimeLocked(reason models.HalftimeReason) string {
	id := s.appendLocked(models.Event{
		Kind:           models.EventKindHalftime,
		TeamSide:       models.TeamSideNone,
		HalftimeReason: reason,
	})

	s.halftimeResolved = true
	s.pendingClockHalftime = false
	s.dirty = true

	s.secondary.Reset(s.matchConfig.HalftimeBreak())
	s.secondary.Start()

	return id
}

// evaluateHalftimeTriggersLocked runs after an accepted score. The score
// trigger takes precedence over a pending clock trigger; neither fires when
// halftime was already resolved this match or the operator deleted the
// halftime event and the suppressing score condition still holds.
func (s *service) evaluateHalftimeTriggersLocked(events []models.Event, a, b int) (bool, models.HalftimeReason) {
	if s.halftimeResolved || derive.HalftimeDeclared(events) {
		return false, ""
	}

	if maxInt(a, b) >= s.matchConfig.HalftimeScore {
		if s.halftimeSuppressed {
			return false, ""
		}
		s.declareHalftimeLocked(models.HalftimeReasonScore)
		return true, models.HalftimeReasonScore
	}

	if s.pendingClockHalftime {
		s.declareHalftimeLocked(models.HalftimeReasonClock)
		return true, models.HalftimeReasonClock
	}

	return false, ""
}

// armClockHalftimeLocked arms the deferred clock trigger once the primary
// clock drops to the configured threshold. The declaration itself waits for
// the next accepted score so the half always ends on a point.
func (s *service) armClockHalftimeLocked() {
	if s.pendingClockHalftime || s.halftimeResolved || s.halftimeSuppressed {
		return
	}
	if !s.started {
		return
	}
	if derive.HalftimeDeclared(s.log.All()) {
		return
	}
	if s.primary.Remaining() <= s.matchConfig.ClockHalftimeThreshold() {
		s.pendingClockHalftime = true
		s.dirty = true
	}
}

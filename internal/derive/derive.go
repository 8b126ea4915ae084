// Package derive holds the pure recomputation functions for everything the
// scoreboard displays. Every function is deterministic over the event log
// plus configuration; recomputing from the full log must exactly reproduce
// any incrementally maintained runtime state.
package derive

import (
	"github.com/fieldside/scorekeeper/internal/models"
)

// Scoreboard tallies Score events by side in log order.
func Scoreboard(events []models.Event) (teamA, teamB int) {
	for _, e := range events {
		if e.Kind != models.EventKindScore {
			continue
		}
		switch e.TeamSide {
		case models.TeamSideA:
			teamA++
		case models.TeamSideB:
			teamB++
		}
	}
	return teamA, teamB
}

// GenderLabel returns the gender-sequence label for the score event at the
// given index (counting Score events only, 0-based). The 0th score gets the
// start value; after that labels alternate in pairs of the opposite value
// then pairs of the start value: for start=M the sequence is
// M, F, F, M, M, F, F, M, M, ...
func GenderLabel(start models.GenderStart, scoreIndex int) string {
	if start == models.GenderStartNone || scoreIndex < 0 {
		return ""
	}

	other := models.GenderStartF
	if start == models.GenderStartF {
		other = models.GenderStartM
	}

	if (scoreIndex+1)/2%2 == 0 {
		return string(start)
	}
	return string(other)
}

// GenderLabels maps every Score event ID to its sequence label. Deleting a
// score renumbers everything after it, so labels are always derived from
// the current log, never stored.
func GenderLabels(events []models.Event, start models.GenderStart) map[string]string {
	labels := make(map[string]string)
	idx := 0
	for _, e := range events {
		if e.Kind != models.EventKindScore {
			continue
		}
		labels[e.ID] = GenderLabel(start, idx)
		idx++
	}
	return labels
}

// TimeoutBalances folds the log into per-team timeout balances. Each
// Timeout event debits the attributed side; a Halftime event resets the
// per-half balance of both sides to min(perHalfAllotment, totalRemaining).
// With per-half limiting disabled the half balance mirrors the total.
func TimeoutBalances(cfg models.MatchConfig, events []models.Event) (a, b models.TimeoutBalance) {
	a = models.TimeoutBalance{Total: cfg.TimeoutsPerTeam}
	b = models.TimeoutBalance{Total: cfg.TimeoutsPerTeam}
	a.Half = halfAllotment(cfg, a.Total)
	b.Half = halfAllotment(cfg, b.Total)

	for _, e := range events {
		switch e.Kind {
		case models.EventKindTimeout:
			switch e.TeamSide {
			case models.TeamSideA:
				a.Total--
				a.Half--
			case models.TeamSideB:
				b.Total--
				b.Half--
			}
			if !cfg.PerHalfLimited() {
				a.Half = a.Total
				b.Half = b.Total
			}
		case models.EventKindHalftime:
			a.Half = halfAllotment(cfg, a.Total)
			b.Half = halfAllotment(cfg, b.Total)
		}
	}
	return a, b
}

func halfAllotment(cfg models.MatchConfig, totalRemaining int) int {
	if !cfg.PerHalfLimited() {
		return totalRemaining
	}
	if cfg.TimeoutsPerHalf < totalRemaining {
		return cfg.TimeoutsPerHalf
	}
	return totalRemaining
}

// HalftimeDeclared reports whether the log contains a Halftime event.
func HalftimeDeclared(events []models.Event) bool {
	for _, e := range events {
		if e.Kind == models.EventKindHalftime {
			return true
		}
	}
	return false
}

// LatestHalftimeID returns the ID of the most recent Halftime event, or ""
// if none exists.
func LatestHalftimeID(events []models.Event) string {
	id := ""
	for _, e := range events {
		if e.Kind == models.EventKindHalftime {
			id = e.ID
		}
	}
	return id
}

// CapReached reports whether either side has hit the score cap.
func CapReached(events []models.Event) bool {
	a, b := Scoreboard(events)
	return a >= models.ScoreCap || b >= models.ScoreCap
}

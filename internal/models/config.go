package models

import "time"

// GenderStart is the starting value of the alternating gender sequence
type GenderStart string

const (
	// GenderStartM starts the sequence on M
	GenderStartM GenderStart = "M"

	// GenderStartF starts the sequence on F
	GenderStartF GenderStart = "F"

	// GenderStartNone disables the gender sequence
	GenderStartNone GenderStart = ""
)

// ScoreCap is the point ceiling; reaching it locks both clocks and blocks
// further scores.
const ScoreCap = 15

// MatchConfig holds the operator-editable match settings. It is replaced
// wholesale by the setup action and persisted with the rest of the state.
type MatchConfig struct {
	// MatchMinutes is the primary clock duration in minutes
	MatchMinutes int

	// HalftimeTriggerMinutes is how many minutes before clock expiry the
	// clock-based halftime trigger arms
	HalftimeTriggerMinutes int

	// HalftimeBreakMinutes is the halftime break duration in minutes
	HalftimeBreakMinutes int

	// TimeoutSeconds is the timeout break duration in seconds
	TimeoutSeconds int

	// TimeoutsPerTeam is the total timeouts each team gets for the match
	TimeoutsPerTeam int

	// TimeoutsPerHalf limits timeouts per team per half; 0 disables the
	// limit, meaning same as total
	TimeoutsPerHalf int

	// HalftimeScore is the score either team must reach to trigger
	// halftime automatically
	HalftimeScore int

	// GenderStart is the first value of the gender sequence
	GenderStart GenderStart
}

// DefaultMatchConfig returns the settings applied on first load.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MatchMinutes:           75,
		HalftimeTriggerMinutes: 35,
		HalftimeBreakMinutes:   10,
		TimeoutSeconds:         75,
		TimeoutsPerTeam:        4,
		TimeoutsPerHalf:        2,
		HalftimeScore:          8,
		GenderStart:            GenderStartNone,
	}
}

// Valid reports whether every setting is inside its accepted range.
func (c MatchConfig) Valid() bool {
	if c.MatchMinutes < 1 || c.MatchMinutes > 300 {
		return false
	}
	if c.HalftimeTriggerMinutes < 1 || c.HalftimeTriggerMinutes > c.MatchMinutes {
		return false
	}
	if c.HalftimeBreakMinutes < 1 || c.HalftimeBreakMinutes > 120 {
		return false
	}
	if c.TimeoutSeconds < 1 || c.TimeoutSeconds > 3600 {
		return false
	}
	if c.TimeoutsPerTeam < 0 || c.TimeoutsPerTeam > 10 {
		return false
	}
	if c.TimeoutsPerHalf < 0 || c.TimeoutsPerHalf > 10 || c.TimeoutsPerHalf > c.TimeoutsPerTeam {
		return false
	}
	if c.HalftimeScore < 1 || c.HalftimeScore > ScoreCap {
		return false
	}
	switch c.GenderStart {
	case GenderStartM, GenderStartF, GenderStartNone:
	default:
		return false
	}
	return true
}

// MatchDuration returns the primary clock duration.
func (c MatchConfig) MatchDuration() time.Duration {
	return time.Duration(c.MatchMinutes) * time.Minute
}

// HalftimeBreak returns the secondary clock duration for the halftime break.
func (c MatchConfig) HalftimeBreak() time.Duration {
	return time.Duration(c.HalftimeBreakMinutes) * time.Minute
}

// TimeoutBreak returns the secondary clock duration for a timeout.
func (c MatchConfig) TimeoutBreak() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ClockHalftimeThreshold returns the primary clock remaining time at or
// below which the clock-based halftime trigger arms.
func (c MatchConfig) ClockHalftimeThreshold() time.Duration {
	return time.Duration(c.MatchMinutes-c.HalftimeTriggerMinutes) * time.Minute
}

// PerHalfLimited reports whether per-half timeout limiting is enabled.
func (c MatchConfig) PerHalfLimited() bool {
	return c.TimeoutsPerHalf > 0
}

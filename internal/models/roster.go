package models

import "time"

// Roster maps a team name to its ordered list of player names
type Roster map[string][]string

// CachedRoster is a roster mapping stored with its fetch time. The cache
// carries its own 24-hour expiry, independent of match-state expiry.
type CachedRoster struct {
	// Teams is the cached team to players mapping
	Teams Roster

	// FetchedAt is when the mapping was retrieved from the provider
	FetchedAt time.Time
}

// RosterTTL is how long a cached roster stays usable.
const RosterTTL = 24 * time.Hour

// Expired reports whether the cached roster is older than RosterTTL.
func (c CachedRoster) Expired(now time.Time) bool {
	return now.Sub(c.FetchedAt) > RosterTTL
}

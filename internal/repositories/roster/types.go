package roster

import (
	"time"

	"github.com/fieldside/scorekeeper/internal/models"
)

// SaveInput contains parameters for caching a roster
type SaveInput struct {
	// Roster is the mapping plus its fetch time
	Roster *models.CachedRoster
}

// GetInput contains parameters for reading the cached roster
type GetInput struct {
	// Now is the current time, used for the expiry check
	Now time.Time
}

// DeleteExpiredInput contains parameters for the eviction check
type DeleteExpiredInput struct {
	// Now is the current time, used for the expiry check
	Now time.Time
}

package snapshot

import (
	"github.com/fieldside/scorekeeper/internal/models"
)

// SaveInput contains parameters for saving a snapshot
type SaveInput struct {
	// Snapshot is the aggregate state to persist
	Snapshot *models.Snapshot
}

// GetInput contains parameters for retrieving the snapshot
type GetInput struct{}

// DeleteInput contains parameters for discarding the snapshot
type DeleteInput struct{}

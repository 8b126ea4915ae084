package snapshot

import (
	"context"

	"github.com/fieldside/scorekeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fieldside/scorekeeper/internal/repositories/snapshot Repository

// Repository persists the match snapshot blob
type Repository interface {
	// Save writes the snapshot, replacing any previous one
	Save(ctx context.Context, input *SaveInput) error

	// Get retrieves the stored snapshot; corrupt or missing entries
	// return ErrNotFound
	Get(ctx context.Context, input *GetInput) (*models.Snapshot, error)

	// Delete discards the stored snapshot
	Delete(ctx context.Context, input *DeleteInput) error
}

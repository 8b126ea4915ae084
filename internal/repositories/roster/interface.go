package roster

import (
	"context"

	"github.com/fieldside/scorekeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fieldside/scorekeeper/internal/repositories/roster Repository

// Repository caches the team-to-players mapping between provider fetches
type Repository interface {
	// Save stores the mapping with its fetch time
	Save(ctx context.Context, input *SaveInput) error

	// Get retrieves the cached mapping; missing, corrupt, or expired
	// entries return ErrNotFound
	Get(ctx context.Context, input *GetInput) (*models.CachedRoster, error)

	// DeleteExpired removes the cache entry if it is past its expiry,
	// reporting whether anything was evicted
	DeleteExpired(ctx context.Context, input *DeleteExpiredInput) (bool, error)
}

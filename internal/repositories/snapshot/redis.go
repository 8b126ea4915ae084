package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fieldside/scorekeeper/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// snapshotKey is the single storage key for the match snapshot
	snapshotKey = "scorekeeper:snapshot"

	// snapshotTTL matches the recovery window; anything older is useless
	snapshotTTL = 24 * time.Hour
)

// ErrNotFound is returned when no usable snapshot is stored
var ErrNotFound = errors.New("snapshot not found")

// Config holds configuration for the Redis snapshot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed snapshot repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Save persists the snapshot with the recovery-window TTL
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	blob, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.client.Set(ctx, snapshotKey, blob, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Get retrieves the stored snapshot. A corrupt entry is treated as absent.
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*models.Snapshot, error) {
	blob, err := r.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		// corrupt blob, drop it so the next read is a clean miss
		r.client.Del(ctx, snapshotKey)
		return nil, ErrNotFound
	}

	return &snap, nil
}

// Delete discards the stored snapshot
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) error {
	if err := r.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

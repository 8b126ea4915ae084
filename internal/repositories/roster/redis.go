package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fieldside/scorekeeper/internal/models"
	"github.com/redis/go-redis/v9"
)

// rosterKey is the single storage key for the cached roster
const rosterKey = "scorekeeper:roster"

// ErrNotFound is returned when no usable cached roster exists
var ErrNotFound = errors.New("cached roster not found")

// Config holds configuration for the Redis roster repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roster cache
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

// Save stores the roster mapping with its fetch time. The expiry stamp
// lives in the blob itself so Get and DeleteExpired can check it against
// the caller's clock rather than relying on store TTL behavior.
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Roster == nil {
		return errors.New("input and roster cannot be nil")
	}

	blob, err := json.Marshal(input.Roster)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	if err := r.client.Set(ctx, rosterKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	return nil
}

// Get retrieves the cached roster, treating corrupt or expired entries as
// absent.
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*models.CachedRoster, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	blob, err := r.client.Get(ctx, rosterKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	var cached models.CachedRoster
	if err := json.Unmarshal([]byte(blob), &cached); err != nil {
		r.client.Del(ctx, rosterKey)
		return nil, ErrNotFound
	}

	if cached.Expired(input.Now) {
		r.client.Del(ctx, rosterKey)
		return nil, ErrNotFound
	}

	return &cached, nil
}

// DeleteExpired evicts the cache entry if it is past its expiry
func (r *redisRepository) DeleteExpired(ctx context.Context, input *DeleteExpiredInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	blob, err := r.client.Get(ctx, rosterKey).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get roster: %w", err)
	}

	var cached models.CachedRoster
	if err := json.Unmarshal([]byte(blob), &cached); err == nil && !cached.Expired(input.Now) {
		return false, nil
	}

	if err := r.client.Del(ctx, rosterKey).Err(); err != nil {
		return false, fmt.Errorf("failed to delete roster: %w", err)
	}

	return true, nil
}

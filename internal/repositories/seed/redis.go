package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	seedKeyPrefix        = "room:seed:"
	revealClaimKeyPrefix = "room:seed:claim:"

	// revealClaimTTL bounds how long a crashed claimant can block a reveal
	revealClaimTTL = 30 * time.Second
)

// ErrSeedNotFound is returned when a room has no seed record
var ErrSeedNotFound = errors.New("seed record not found")

// Config holds configuration for the Redis seed repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed seed repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// UpsertSeed stores the (secret, hash) pair for a room
func (r *redisRepository) UpsertSeed(ctx context.Context, input *UpsertSeedInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.Record.RoomID == "" || input.Record.Secret == "" || input.Record.Hash == "" {
		return errors.New("record room ID, secret and hash cannot be empty")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal seed record: %w", err)
	}

	seedKey := fmt.Sprintf("%s%s", seedKeyPrefix, input.Record.RoomID)
	if err := r.client.Set(ctx, seedKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to upsert seed record: %w", err)
	}

	return nil
}

// GetSeed retrieves a room's seed record
func (r *redisRepository) GetSeed(ctx context.Context, input *GetSeedInput) (*Record, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	seedKey := fmt.Sprintf("%s%s", seedKeyPrefix, input.RoomID)
	recordJSON, err := r.client.Get(ctx, seedKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSeedNotFound
		}
		return nil, fmt.Errorf("failed to get seed record: %w", err)
	}

	var record Record
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed record: %w", err)
	}

	return &record, nil
}

// ClaimReveal atomically claims the reveal for a room via SET NX
func (r *redisRepository) ClaimReveal(ctx context.Context, input *ClaimRevealInput) (bool, error) {
	if input == nil || input.RoomID == "" {
		return false, errors.New("input and room ID cannot be empty")
	}

	// The TTL frees the claim if the claimant dies before persisting a
	// winner; a finished reveal is detected through the room record, not
	// this key
	claimKey := fmt.Sprintf("%s%s", revealClaimKeyPrefix, input.RoomID)
	claimed, err := r.client.SetNX(ctx, claimKey, "1", revealClaimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim reveal: %w", err)
	}

	return claimed, nil
}

// MarkRevealed records when the seed was revealed
func (r *redisRepository) MarkRevealed(ctx context.Context, input *MarkRevealedInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	record, err := r.GetSeed(ctx, &GetSeedInput{RoomID: input.RoomID})
	if err != nil {
		return err
	}

	record.RevealedAt = input.RevealedAt

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal seed record: %w", err)
	}

	seedKey := fmt.Sprintf("%s%s", seedKeyPrefix, input.RoomID)
	if err := r.client.Set(ctx, seedKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to mark seed revealed: %w", err)
	}

	return nil
}

// DeleteSeed removes a room's seed record and reveal claim
func (r *redisRepository) DeleteSeed(ctx context.Context, input *DeleteSeedInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", seedKeyPrefix, input.RoomID))
	pipe.Del(ctx, fmt.Sprintf("%s%s", revealClaimKeyPrefix, input.RoomID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete seed record: %w", err)
	}

	return nil
}

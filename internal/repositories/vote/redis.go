package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; each room's votes live in one hash keyed by
	// participant ID, so HSET is last-write-wins per participant
	votesKeyPrefix = "room:votes:"
)

// Config holds configuration for the Redis vote repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed vote repository
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

// SetVote records a participant's vote, replacing any earlier one
func (r *redisRepository) SetVote(ctx context.Context, input *SetVoteInput) error {
	if input == nil || input.RoomID == "" || input.ParticipantID == "" || input.OptionID == "" {
		return errors.New("input, room ID, participant ID and option ID cannot be empty")
	}

	votesKey := fmt.Sprintf("%s%s", votesKeyPrefix, input.RoomID)
	if err := r.client.HSet(ctx, votesKey, input.ParticipantID, input.OptionID).Err(); err != nil {
		return fmt.Errorf("failed to set vote: %w", err)
	}

	return nil
}

// GetVotesByRoom returns the room's participant ID -> option ID map
func (r *redisRepository) GetVotesByRoom(ctx context.Context, input *GetVotesByRoomInput) (map[string]string, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	votesKey := fmt.Sprintf("%s%s", votesKeyPrefix, input.RoomID)
	votes, err := r.client.HGetAll(ctx, votesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}

	return votes, nil
}

// DeleteVotesByRoom removes every vote in a room
func (r *redisRepository) DeleteVotesByRoom(ctx context.Context, input *DeleteVotesByRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	votesKey := fmt.Sprintf("%s%s", votesKeyPrefix, input.RoomID)
	if err := r.client.Del(ctx, votesKey).Err(); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	return nil
}

package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wheelparty/chaoswheel/internal/models"
)

const (
	// Key prefix for Redis
	roomKeyPrefix = "room:"
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

// SaveRoom persists a room to Redis. The room record is a single JSON value
// so phase, commitment and winner fields always flip together.
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.ID)
	if err := r.client.Set(ctx, roomKey, roomJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wheelparty/chaoswheel/internal/models"
)

const (
	// Key prefixes for Redis
	eventLogPrefix = "room:events:"
	eventSeqPrefix = "room:events:seq:"
)

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
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

// AppendEvent assigns the next sequence number and appends the event to the
// room's log
func (r *redisRepository) AppendEvent(ctx context.Context, input *AppendEventInput) (*models.Event, error) {
	if input == nil || input.Event == nil {
		return nil, errors.New("input and event cannot be nil")
	}

	if input.Event.RoomID == "" {
		return nil, errors.New("event room ID cannot be empty")
	}

	seqKey := fmt.Sprintf("%s%s", eventSeqPrefix, input.Event.RoomID)
	seq, err := r.client.Incr(ctx, seqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to assign event sequence: %w", err)
	}

	stored := *input.Event
	stored.Seq = seq

	eventJSON, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	logKey := fmt.Sprintf("%s%s", eventLogPrefix, input.Event.RoomID)
	if err := r.client.RPush(ctx, logKey, eventJSON).Err(); err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return &stored, nil
}

// GetEvents retrieves a room's events after a sequence number, in append order
func (r *redisRepository) GetEvents(ctx context.Context, input *GetEventsInput) ([]*models.Event, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	logKey := fmt.Sprintf("%s%s", eventLogPrefix, input.RoomID)
	entries, err := r.client.LRange(ctx, logKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]*models.Event, 0, len(entries))
	for _, entry := range entries {
		var evt models.Event
		if err := json.Unmarshal([]byte(entry), &evt); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		if evt.Seq <= input.AfterSeq {
			continue
		}
		events = append(events, &evt)
	}

	return events, nil
}

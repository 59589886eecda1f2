package participant

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
	participantKeyPrefix = "participant:"
	roomRosterPrefix     = "room:roster:" // sorted set of participant IDs per room
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

// SaveParticipant persists a participant and indexes it under its room
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	participantJSON, err := json.Marshal(input.Participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.Pipeline()

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, input.Participant.ID)
	pipe.Set(ctx, participantKey, participantJSON, 0)

	// Index the participant in the room roster, scored by join time so
	// GetParticipantsByRoom returns join order
	rosterKey := fmt.Sprintf("%s%s", roomRosterPrefix, input.Participant.RoomID)
	pipe.ZAdd(ctx, rosterKey, redis.Z{
		Score:  float64(input.Participant.CreatedAt.UnixNano()),
		Member: input.Participant.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, input.ParticipantID)
	participantJSON, err := r.client.Get(ctx, participantKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var participant models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &participant, nil
}

// GetParticipantsByRoom retrieves a room's participants in join order
func (r *redisRepository) GetParticipantsByRoom(ctx context.Context, input *GetParticipantsByRoomInput) ([]*models.Participant, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	rosterKey := fmt.Sprintf("%s%s", roomRosterPrefix, input.RoomID)
	participantIDs, err := r.client.ZRange(ctx, rosterKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room roster: %w", err)
	}

	if len(participantIDs) == 0 {
		return []*models.Participant{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(participantIDs))
	for _, participantID := range participantIDs {
		participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, participantID)
		commands = append(commands, pipe.Get(ctx, participantKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(participantIDs))
	for _, cmd := range commands {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Removed between the roster read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get participant: %w", err)
		}

		var participant models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
		}

		participants = append(participants, &participant)
	}

	return participants, nil
}

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/wheelparty/chaoswheel/internal/models"
)

const (
	// Channel prefix for Redis pub/sub
	roomChannelPrefix = "room:feed:"
)

// Config holds configuration for the Redis transport
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisTransport implements Publisher and Subscriber using Redis pub/sub
type redisTransport struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed transport
func NewRedis(cfg *Config) (*redisTransport, error) {
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

	return &redisTransport{
		client: cfg.RedisClient,
	}, nil
}

func roomChannel(roomID string) string {
	return fmt.Sprintf("%s%s", roomChannelPrefix, roomID)
}

// PublishEvent delivers a newly appended event to the room's observers
func (t *redisTransport) PublishEvent(ctx context.Context, event *models.Event) error {
	if event == nil || event.RoomID == "" {
		return errors.New("event and room ID cannot be empty")
	}

	return t.publish(ctx, event.RoomID, Message{Event: event})
}

// PublishRoomUpdate delivers an updated room record to the room's observers
func (t *redisTransport) PublishRoomUpdate(ctx context.Context, room *models.Room) error {
	if room == nil || room.ID == "" {
		return errors.New("room and room ID cannot be empty")
	}

	return t.publish(ctx, room.ID, Message{Room: room})
}

func (t *redisTransport) publish(ctx context.Context, roomID string, msg Message) error {
	payload, err := json.Marshal(&msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := t.client.Publish(ctx, roomChannel(roomID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Subscribe returns a channel of messages for the room
func (t *redisTransport) Subscribe(ctx context.Context, roomID string) (<-chan Message, func(), error) {
	if roomID == "" {
		return nil, nil, errors.New("room ID cannot be empty")
	}

	pubsub := t.client.Subscribe(ctx, roomChannel(roomID))

	// Confirm the subscription before handing the channel out so no
	// published message slips past during setup
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan Message, 16)
	go func() {
		defer close(out)
		for redisMsg := range pubsub.Channel() {
			var msg Message
			if err := json.Unmarshal([]byte(redisMsg.Payload), &msg); err != nil {
				log.Printf("transport: dropping malformed message on %s: %v", redisMsg.Channel, err)
				continue
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		_ = pubsub.Close()
	}

	return out, cancel, nil
}

// Package transport delivers newly appended events and room record updates
// to subscribed observers. Delivery is at-least-once and unordered; the
// reconciler owns dedupe and reordering tolerance, not the transport.
package transport

//go:generate mockgen -package=mocks -destination=mocks/mock_transport.go github.com/wheelparty/chaoswheel/internal/transport Publisher,Subscriber

import (
	"context"

	"github.com/wheelparty/chaoswheel/internal/models"
)

// Message is one delivery to an observer: exactly one field is set
type Message struct {
	// Event is a newly appended room event
	Event *models.Event `json:"event,omitempty"`

	// Room is an updated room record
	Room *models.Room `json:"room,omitempty"`
}

// Publisher pushes room activity to observers
type Publisher interface {
	// PublishEvent delivers a newly appended event to the room's observers
	PublishEvent(ctx context.Context, event *models.Event) error

	// PublishRoomUpdate delivers an updated room record to the room's
	// observers
	PublishRoomUpdate(ctx context.Context, room *models.Room) error
}

// Subscriber receives room activity for one room
type Subscriber interface {
	// Subscribe returns a channel of messages for the room and a cancel
	// function that releases the subscription and closes the channel
	Subscribe(ctx context.Context, roomID string) (<-chan Message, func(), error)
}

package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wheelparty/chaoswheel/internal/repositories/event Repository

import (
	"context"

	"github.com/wheelparty/chaoswheel/internal/models"
)

// Repository defines the interface for the append-only per-room event log
type Repository interface {
	// AppendEvent assigns the next sequence number and appends the event
	// to the room's log. The stored event (with Seq set) is returned.
	AppendEvent(ctx context.Context, input *AppendEventInput) (*models.Event, error)

	// GetEvents retrieves a room's events with Seq greater than AfterSeq,
	// in append order
	GetEvents(ctx context.Context, input *GetEventsInput) ([]*models.Event, error)
}

package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wheelparty/chaoswheel/internal/repositories/room Repository

import (
	"context"

	"github.com/wheelparty/chaoswheel/internal/models"
)

// Repository defines the interface for room persistence
type Repository interface {
	// SaveRoom persists a room, options included
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)
}

package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wheelparty/chaoswheel/internal/repositories/participant Repository

import (
	"context"

	"github.com/wheelparty/chaoswheel/internal/models"
)

// Repository defines the interface for participant persistence
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// GetParticipantsByRoom retrieves a room's participants in join order
	GetParticipantsByRoom(ctx context.Context, input *GetParticipantsByRoomInput) ([]*models.Participant, error)
}

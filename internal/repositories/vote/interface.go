package vote

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wheelparty/chaoswheel/internal/repositories/vote Repository

import (
	"context"
)

// Repository defines the interface for vote persistence. A participant
// holds at most one vote per room; SetVote overwrites any previous choice.
type Repository interface {
	// SetVote records a participant's vote, replacing any earlier one
	SetVote(ctx context.Context, input *SetVoteInput) error

	// GetVotesByRoom returns the room's participant ID -> option ID map
	GetVotesByRoom(ctx context.Context, input *GetVotesByRoomInput) (map[string]string, error)

	// DeleteVotesByRoom removes every vote in a room
	DeleteVotesByRoom(ctx context.Context, input *DeleteVotesByRoomInput) error
}

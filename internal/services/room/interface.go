package room

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/wheelparty/chaoswheel/internal/services/room Service

import (
	"context"
)

// Service defines the room lifecycle operations
type Service interface {
	// CreateRoom creates a room in the open phase with its host and
	// ordered options
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a participant to a room
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// CastVote records a participant's vote while the room is open;
	// a later vote replaces an earlier one
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// SendReaction appends an ephemeral reaction event
	SendReaction(ctx context.Context, input *SendReactionInput) (*SendReactionOutput, error)

	// LockRoom closes voting and commits a fresh seed; host only
	LockRoom(ctx context.Context, input *LockRoomInput) (*LockRoomOutput, error)

	// RevealRoom verifies the committed seed, runs the draw and records
	// the winner; host only, idempotent per lock cycle
	RevealRoom(ctx context.Context, input *RevealRoomInput) (*RevealRoomOutput, error)

	// Rematch resets the room for another round; host only
	Rematch(ctx context.Context, input *RematchInput) (*RematchOutput, error)

	// GetSnapshot reads the room, roster and vote map in one logical read
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// GetEvents reads the room's event log, optionally only past a known
	// sequence number
	GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error)
}

package room

import (
	"github.com/wheelparty/chaoswheel/internal/models"
)

type CreateRoomInput struct {
	// Name is the room's display name
	Name string

	// OptionLabels are the wheel options in display order
	OptionLabels []string

	// HostNickname is the host's display name; defaults to "Host"
	HostNickname string
}

type CreateRoomOutput struct {
	Room *models.Room

	// Host is the participant created for the caller
	Host *models.Participant
}

type JoinRoomInput struct {
	RoomID   string
	Nickname string

	// Role is PLAYER or SPECTATOR; defaults to PLAYER
	Role models.ParticipantRole
}

type JoinRoomOutput struct {
	Participant *models.Participant
}

type CastVoteInput struct {
	RoomID        string
	ParticipantID string
	OptionID      string
}

type CastVoteOutput struct {
}

type SendReactionInput struct {
	RoomID string

	// ParticipantID is optional; anonymous reactions are allowed
	ParticipantID string

	Emoji string
}

type SendReactionOutput struct {
}

type LockRoomInput struct {
	RoomID string

	// CallerID must be the room's host
	CallerID string

	// CountdownSeconds is the auto-reveal countdown; zero disables it
	CountdownSeconds int
}

type LockRoomOutput struct {
	// SeedCommitment is the published hash of the committed seed
	SeedCommitment string

	CountdownSeconds int
}

type RevealRoomInput struct {
	RoomID string

	// CallerID must be the room's host
	CallerID string
}

type RevealRoomOutput struct {
	WinnerOptionID string
	Modifier       models.Modifier

	// RevealedSeed is the verified seed; consumers can recompute the
	// outcome from it
	RevealedSeed string

	// Weights is the final weight vector from the draw; nil when the
	// output replays an already-recorded result
	Weights []int
}

type RematchInput struct {
	RoomID string

	// CallerID must be the room's host
	CallerID string
}

type RematchOutput struct {
}

type GetSnapshotInput struct {
	RoomID string
}

type GetSnapshotOutput struct {
	Room         *models.Room
	Participants []*models.Participant

	// Votes maps participant ID to the chosen option ID
	Votes map[string]string
}

type GetEventsInput struct {
	RoomID string

	// AfterSeq skips events the caller has already folded in; zero reads
	// the whole log
	AfterSeq int64
}

type GetEventsOutput struct {
	Events []*models.Event
}

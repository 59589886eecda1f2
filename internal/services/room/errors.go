package room

import "errors"

// Define errors
var (
	// ErrRoomNotFound is returned when the referenced room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrParticipantNotFound is returned when the referenced participant
	// does not exist or belongs to another room
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrOptionNotFound is returned when the referenced option does not
	// exist in the room
	ErrOptionNotFound = errors.New("option not found")

	// ErrNotHost is returned when a non-host caller attempts a host-only
	// action
	ErrNotHost = errors.New("host only")

	// ErrIllegalTransition is returned when an action is invalid for the
	// room's current phase
	ErrIllegalTransition = errors.New("illegal phase transition")

	// ErrVotingClosed is returned when a vote arrives while the room is
	// not open
	ErrVotingClosed = errors.New("voting is closed")

	// ErrSpectatorVote is returned when a spectator attempts to vote
	ErrSpectatorVote = errors.New("spectators cannot vote")

	// ErrInvalidOptions is returned when a room is created with too few or
	// too many options
	ErrInvalidOptions = errors.New("invalid option count")

	// ErrInvalidCountdown is returned when a lock carries a countdown
	// outside the allowed range
	ErrInvalidCountdown = errors.New("invalid countdown")

	// ErrIntegrityFailure is returned when the stored seed does not match
	// the published commitment. The reveal fails closed; the room needs
	// manual recovery (rematch).
	ErrIntegrityFailure = errors.New("seed commitment integrity failure")

	// ErrRevealInProgress is returned when another reveal holds the claim
	// but has not yet persisted a winner; the caller may retry
	ErrRevealInProgress = errors.New("reveal already in progress")
)

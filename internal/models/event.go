package models

import (
	"time"
)

// EventType identifies what a room event describes
type EventType string

const (
	// EventRoomCreated is appended once when a room is created
	EventRoomCreated EventType = "ROOM_CREATED"

	// EventParticipantJoined is appended when a participant joins
	EventParticipantJoined EventType = "PARTICIPANT_JOINED"

	// EventReactionSent is appended for an ephemeral reaction
	EventReactionSent EventType = "REACTION_SENT"

	// EventVotePlaced is appended when a vote is cast or changed
	EventVotePlaced EventType = "VOTE_PLACED"

	// EventPhaseSet is appended whenever the room phase changes
	EventPhaseSet EventType = "PHASE_SET"

	// EventSeedCommit is appended with the seed commitment at lock time
	EventSeedCommit EventType = "SEED_COMMIT"

	// EventSeedReveal is appended with the verified seed at reveal time
	EventSeedReveal EventType = "SEED_REVEAL"

	// EventResultFinal is appended exactly once per lock cycle with the
	// winning option and modifier
	EventResultFinal EventType = "RESULT_FINAL"
)

// Event is an immutable, append-only record of a room state change.
// Events are a derived log; the room/participant/vote records remain the
// source of truth for current state.
type Event struct {
	// ID is the unique identifier for the event
	ID string `json:"id"`

	// RoomID is the room the event belongs to
	RoomID string `json:"roomId"`

	// Seq is the event's position in the room's log, assigned at append
	Seq int64 `json:"seq"`

	// Type identifies what the event describes
	Type EventType `json:"type"`

	// Payload carries the type-specific fields
	Payload EventPayload `json:"payload"`

	// CreatedAt is the server timestamp at append time
	CreatedAt time.Time `json:"createdAt"`
}

// EventPayload is the union of per-type event fields. Only the fields
// relevant to the event's type are set.
type EventPayload struct {
	// PHASE_SET
	Phase            RoomPhase `json:"phase,omitempty"`
	At               time.Time `json:"at,omitempty"`
	CountdownSeconds int       `json:"countdownSeconds,omitempty"`
	Reset            bool      `json:"reset,omitempty"`

	// PARTICIPANT_JOINED
	ParticipantID string          `json:"participantId,omitempty"`
	Nickname      string          `json:"nickname,omitempty"`
	Role          ParticipantRole `json:"role,omitempty"`

	// VOTE_PLACED (ParticipantID shared with PARTICIPANT_JOINED)
	OptionID string `json:"optionId,omitempty"`

	// REACTION_SENT
	Emoji string `json:"emoji,omitempty"`

	// SEED_COMMIT
	SeedHash string `json:"seedHash,omitempty"`

	// SEED_REVEAL / RESULT_FINAL
	Seed           string   `json:"seed,omitempty"`
	WinnerOptionID string   `json:"winnerOptionId,omitempty"`
	Modifier       Modifier `json:"modifier,omitempty"`
	Weights        []int    `json:"weights,omitempty"`

	// ROOM_CREATED
	Name string `json:"name,omitempty"`
}

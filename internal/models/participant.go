package models

import (
	"time"
)

// ParticipantRole represents what a participant may do in a room
type ParticipantRole string

const (
	// RoleHost is the room host; exactly one per room
	RoleHost ParticipantRole = "HOST"

	// RolePlayer may vote and react
	RolePlayer ParticipantRole = "PLAYER"

	// RoleSpectator may react but casts no vote
	RoleSpectator ParticipantRole = "SPECTATOR"
)

// Participant represents a member of a room
type Participant struct {
	// ID is the unique identifier for the participant
	ID string `json:"id"`

	// RoomID is the room the participant belongs to
	RoomID string `json:"roomId"`

	// Nickname is the display name
	Nickname string `json:"nickname"`

	// Role is the participant's role in the room
	Role ParticipantRole `json:"role"`

	// CreatedAt is when the participant joined
	CreatedAt time.Time `json:"createdAt"`

	// LastSeenAt is when the participant was last active
	LastSeenAt time.Time `json:"lastSeenAt"`
}

package models

import (
	"time"
)

// RoomPhase represents the current phase of a room's round
type RoomPhase string

const (
	// RoomPhaseOpen indicates voting is open
	RoomPhaseOpen RoomPhase = "OPEN"

	// RoomPhaseLocked indicates voting is closed and a seed has been committed
	RoomPhaseLocked RoomPhase = "LOCKED"

	// RoomPhaseRevealing indicates the draw is in progress
	RoomPhaseRevealing RoomPhase = "REVEALING"

	// RoomPhaseResults indicates a winner has been recorded
	RoomPhaseResults RoomPhase = "RESULTS"
)

// Room represents one game instance
type Room struct {
	// ID is the unique identifier for the room
	ID string `json:"id"`

	// Name is the display name of the room
	Name string `json:"name"`

	// Phase is the current phase of the round
	Phase RoomPhase `json:"phase"`

	// HostParticipantID is the participant designated as host, fixed at creation
	HostParticipantID string `json:"hostParticipantId"`

	// SeedCommitment is the published SHA-256 hash of the secret seed,
	// present once the room is locked
	SeedCommitment string `json:"seedCommitment,omitempty"`

	// RevealedSeed is the secret seed, present only after reveal. It must
	// hash to SeedCommitment.
	RevealedSeed string `json:"revealedSeed,omitempty"`

	// ChaosModifier is the modifier drawn during the reveal
	ChaosModifier Modifier `json:"chaosModifier,omitempty"`

	// WinnerOptionID is the winning option, present only after reveal
	WinnerOptionID string `json:"winnerOptionId,omitempty"`

	// CountdownSeconds is the auto-reveal countdown persisted at lock time
	CountdownSeconds int `json:"countdownSeconds,omitempty"`

	// Options are the room's options in their fixed display order
	Options []*Option `json:"options"`

	// CreatedAt is when the room was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the room was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// OptionByID returns the room's option with the given ID, or nil
func (r *Room) OptionByID(optionID string) *Option {
	for _, opt := range r.Options {
		if opt.ID == optionID {
			return opt
		}
	}
	return nil
}

// OptionIDs returns the room's option IDs in display order
func (r *Room) OptionIDs() []string {
	ids := make([]string, 0, len(r.Options))
	for _, opt := range r.Options {
		ids = append(ids, opt.ID)
	}
	return ids
}

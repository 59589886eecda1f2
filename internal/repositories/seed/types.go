package seed

import "time"

// Record is the privately stored seed commitment pair for one lock cycle
type Record struct {
	// RoomID is the room the record belongs to
	RoomID string `json:"roomId"`

	// Secret is the seed; never published before reveal
	Secret string `json:"secret"`

	// Hash is the published commitment, sha256(Secret)
	Hash string `json:"hash"`

	// CreatedAt is when the room was locked
	CreatedAt time.Time `json:"createdAt"`

	// RevealedAt is when the seed was revealed, zero until then
	RevealedAt time.Time `json:"revealedAt,omitzero"`
}

type UpsertSeedInput struct {
	Record *Record
}

type GetSeedInput struct {
	RoomID string
}

type ClaimRevealInput struct {
	RoomID string
}

type MarkRevealedInput struct {
	RoomID     string
	RevealedAt time.Time
}

type DeleteSeedInput struct {
	RoomID string
}

package models

// Option represents one choice on the wheel. Options belong to exactly one
// room and their order is fixed at room creation.
type Option struct {
	// ID is the unique identifier for the option
	ID string `json:"id"`

	// RoomID is the room the option belongs to
	RoomID string `json:"roomId"`

	// Label is the display text
	Label string `json:"label"`

	// OrderIndex is the option's position on the wheel, assigned at creation
	OrderIndex int `json:"orderIndex"`
}

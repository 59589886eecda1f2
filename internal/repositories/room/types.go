package room

import "github.com/wheelparty/chaoswheel/internal/models"

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID string
}

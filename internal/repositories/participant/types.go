package participant

import "github.com/wheelparty/chaoswheel/internal/models"

type SaveParticipantInput struct {
	Participant *models.Participant
}

type GetParticipantInput struct {
	ParticipantID string
}

type GetParticipantsByRoomInput struct {
	RoomID string
}

package event

import "github.com/wheelparty/chaoswheel/internal/models"

type AppendEventInput struct {
	Event *models.Event
}

type GetEventsInput struct {
	RoomID string

	// AfterSeq limits the read to events appended after this sequence
	// number; zero reads the whole log
	AfterSeq int64
}

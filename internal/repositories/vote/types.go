package vote

type SetVoteInput struct {
	RoomID        string
	ParticipantID string
	OptionID      string
}

type GetVotesByRoomInput struct {
	RoomID string
}

type DeleteVotesByRoomInput struct {
	RoomID string
}

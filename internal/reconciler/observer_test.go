package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wheelparty/chaoswheel/internal/models"
	"github.com/wheelparty/chaoswheel/internal/services/room"
	serviceMocks "github.com/wheelparty/chaoswheel/internal/services/room/mocks"
	"github.com/wheelparty/chaoswheel/internal/transport"
	transportMocks "github.com/wheelparty/chaoswheel/internal/transport/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ObserverTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockService    *serviceMocks.MockService
	mockSubscriber *transportMocks.MockSubscriber

	testRoomID string
	snapshot   *room.GetSnapshotOutput
}

func (s *ObserverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = serviceMocks.NewMockService(s.mockCtrl)
	s.mockSubscriber = transportMocks.NewMockSubscriber(s.mockCtrl)

	s.testRoomID = "test-room-id"
	s.snapshot = &room.GetSnapshotOutput{
		Room: &models.Room{
			ID:                s.testRoomID,
			Name:              "Friday Dinner",
			Phase:             models.RoomPhaseOpen,
			HostParticipantID: "host-1",
			Options: []*models.Option{
				{ID: "opt-a", RoomID: s.testRoomID, Label: "Tacos"},
				{ID: "opt-b", RoomID: s.testRoomID, Label: "Sushi"},
			},
		},
		Participants: []*models.Participant{
			{ID: "host-1", RoomID: s.testRoomID, Nickname: "Alice", Role: models.RoleHost},
		},
		Votes: map[string]string{},
	}
}

func (s *ObserverTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ObserverTestSuite) newObserver(pollInterval time.Duration) *Observer {
	observer, err := New(&Config{
		RoomID:       s.testRoomID,
		Snapshots:    s.mockService,
		Subscriber:   s.mockSubscriber,
		PollInterval: pollInterval,
	})
	s.Require().NoError(err)
	return observer
}

func (s *ObserverTestSuite) TestFoldsPushedEvents() {
	msgs := make(chan transport.Message, 4)

	s.mockService.EXPECT().
		GetSnapshot(gomock.Any(), &room.GetSnapshotInput{RoomID: s.testRoomID}).
		Return(s.snapshot, nil)
	s.mockSubscriber.EXPECT().
		Subscribe(gomock.Any(), s.testRoomID).
		Return((<-chan transport.Message)(msgs), func() {}, nil)

	observer := s.newObserver(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- observer.Run(ctx) }()

	s.Require().Eventually(func() bool {
		return observer.Current().Name == "Friday Dinner"
	}, time.Second, 5*time.Millisecond)

	msgs <- transport.Message{Event: &models.Event{
		ID:     "event-1",
		RoomID: s.testRoomID,
		Seq:    1,
		Type:   models.EventVotePlaced,
		Payload: models.EventPayload{
			ParticipantID: "host-1",
			OptionID:      "opt-b",
		},
	}}

	s.Require().Eventually(func() bool {
		return observer.Current().Votes["host-1"] == "opt-b"
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Require().ErrorIs(<-done, context.Canceled)
}

func (s *ObserverTestSuite) TestMergesRoomUpdates() {
	msgs := make(chan transport.Message, 4)

	s.mockService.EXPECT().
		GetSnapshot(gomock.Any(), gomock.Any()).
		Return(s.snapshot, nil)
	s.mockSubscriber.EXPECT().
		Subscribe(gomock.Any(), s.testRoomID).
		Return((<-chan transport.Message)(msgs), func() {}, nil)

	observer := s.newObserver(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- observer.Run(ctx) }()

	lockedRoom := *s.snapshot.Room
	lockedRoom.Phase = models.RoomPhaseLocked
	lockedRoom.SeedCommitment = "deadbeef"
	lockedRoom.CountdownSeconds = 5
	msgs <- transport.Message{Room: &lockedRoom}

	s.Require().Eventually(func() bool {
		state := observer.Current()
		return state.Phase == models.RoomPhaseLocked && state.SeedCommitment == "deadbeef"
	}, time.Second, 5*time.Millisecond)

	// Roster folded from the snapshot survives the room merge
	s.Contains(observer.Current().Members, "host-1")

	cancel()
	<-done
}

func (s *ObserverTestSuite) TestPollBackstopReconciles() {
	msgs := make(chan transport.Message)

	first := s.snapshot
	second := &room.GetSnapshotOutput{
		Room: &models.Room{
			ID:                s.testRoomID,
			Name:              "Friday Dinner",
			Phase:             models.RoomPhaseResults,
			HostParticipantID: "host-1",
			WinnerOptionID:    "opt-a",
			ChaosModifier:     models.ModifierDoubleDown,
			RevealedSeed:      "abc123",
			Options:           first.Room.Options,
		},
		Participants: first.Participants,
		Votes:        map[string]string{"host-1": "opt-a"},
	}

	gomock.InOrder(
		s.mockService.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Return(first, nil),
		s.mockService.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Return(second, nil),
	)
	s.mockService.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Return(second, nil).AnyTimes()
	s.mockSubscriber.EXPECT().
		Subscribe(gomock.Any(), s.testRoomID).
		Return((<-chan transport.Message)(msgs), func() {}, nil)

	// No pushed messages at all; the poll alone must converge the state
	observer := s.newObserver(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- observer.Run(ctx) }()

	s.Require().Eventually(func() bool {
		state := observer.Current()
		return state.WinnerOptionID == "opt-a" && state.DerivedPhase() == models.RoomPhaseResults
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func (s *ObserverTestSuite) TestFirstSnapshotFailureIsFatal() {
	snapErr := errors.New("redis down")
	s.mockService.EXPECT().
		GetSnapshot(gomock.Any(), gomock.Any()).
		Return(nil, snapErr)

	observer := s.newObserver(time.Minute)

	err := observer.Run(context.Background())
	s.Require().ErrorIs(err, snapErr)
}

func (s *ObserverTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{RoomID: s.testRoomID, Subscriber: s.mockSubscriber})
	s.Error(err)

	_, err = New(&Config{RoomID: s.testRoomID, Snapshots: s.mockService})
	s.Error(err)
}

func TestObserverTestSuite(t *testing.T) {
	suite.Run(t, new(ObserverTestSuite))
}

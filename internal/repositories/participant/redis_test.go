package participant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/wheelparty/chaoswheel/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetParticipant() {
	participant := &models.Participant{
		ID:         "test-participant-id",
		RoomID:     "test-room-id",
		Nickname:   "Alex",
		Role:       models.RoleHost,
		CreatedAt:  s.testNow,
		LastSeenAt: s.testNow,
	}

	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: participant,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "test-participant-id",
	})
	s.Require().NoError(err)

	s.Equal(participant.ID, retrieved.ID)
	s.Equal(participant.RoomID, retrieved.RoomID)
	s.Equal("Alex", retrieved.Nickname)
	s.Equal(models.RoleHost, retrieved.Role)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantNotFound() {
	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "missing",
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantsByRoomJoinOrder() {
	for i, nickname := range []string{"Alex", "Sam", "Taylor"} {
		participant := &models.Participant{
			ID:        nickname,
			RoomID:    "test-room-id",
			Nickname:  nickname,
			Role:      models.RolePlayer,
			CreatedAt: s.testNow.Add(time.Duration(i) * time.Second),
		}
		err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
			Participant: participant,
		})
		s.Require().NoError(err)
	}

	participants, err := s.repo.GetParticipantsByRoom(context.Background(), &GetParticipantsByRoomInput{
		RoomID: "test-room-id",
	})
	s.Require().NoError(err)

	s.Require().Len(participants, 3)
	s.Equal("Alex", participants[0].Nickname)
	s.Equal("Sam", participants[1].Nickname)
	s.Equal("Taylor", participants[2].Nickname)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantsByRoomEmpty() {
	participants, err := s.repo.GetParticipantsByRoom(context.Background(), &GetParticipantsByRoomInput{
		RoomID: "empty-room",
	})
	s.Require().NoError(err)
	s.Empty(participants)
}

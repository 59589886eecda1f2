package room

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

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoom() {
	room := &models.Room{
		ID:                "test-room-id",
		Name:              "Friday Dinner",
		Phase:             models.RoomPhaseOpen,
		HostParticipantID: "test-host-id",
		Options: []*models.Option{
			{ID: "opt-1", RoomID: "test-room-id", Label: "Tacos", OrderIndex: 0},
			{ID: "opt-2", RoomID: "test-room-id", Label: "Sushi", OrderIndex: 1},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)

	s.Equal(room.ID, retrieved.ID)
	s.Equal(room.Name, retrieved.Name)
	s.Equal(models.RoomPhaseOpen, retrieved.Phase)
	s.Equal(room.HostParticipantID, retrieved.HostParticipantID)
	s.Require().Len(retrieved.Options, 2)
	s.Equal("Tacos", retrieved.Options[0].Label)
	s.Equal(1, retrieved.Options[1].OrderIndex)
}

func (s *RedisRepositoryTestSuite) TestSaveRoomOverwrites() {
	room := &models.Room{
		ID:    "test-room-id",
		Name:  "Friday Dinner",
		Phase: models.RoomPhaseOpen,
	}

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room})
	s.Require().NoError(err)

	room.Phase = models.RoomPhaseLocked
	room.SeedCommitment = "deadbeef"
	err = s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Equal(models.RoomPhaseLocked, retrieved.Phase)
	s.Equal("deadbeef", retrieved.SeedCommitment)
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "missing"})
	s.ErrorIs(err, ErrRoomNotFound)
}

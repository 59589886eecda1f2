package vote

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSetAndGetVotes() {
	err := s.repo.SetVote(context.Background(), &SetVoteInput{
		RoomID:        "test-room-id",
		ParticipantID: "alex",
		OptionID:      "opt-1",
	})
	s.Require().NoError(err)

	err = s.repo.SetVote(context.Background(), &SetVoteInput{
		RoomID:        "test-room-id",
		ParticipantID: "sam",
		OptionID:      "opt-2",
	})
	s.Require().NoError(err)

	votes, err := s.repo.GetVotesByRoom(context.Background(), &GetVotesByRoomInput{
		RoomID: "test-room-id",
	})
	s.Require().NoError(err)

	s.Equal(map[string]string{
		"alex": "opt-1",
		"sam":  "opt-2",
	}, votes)
}

// A participant voting again replaces the earlier choice: exactly one vote
// per participant, for the later option.
func (s *RedisRepositoryTestSuite) TestSetVoteOverwrites() {
	err := s.repo.SetVote(context.Background(), &SetVoteInput{
		RoomID:        "test-room-id",
		ParticipantID: "alex",
		OptionID:      "opt-1",
	})
	s.Require().NoError(err)

	err = s.repo.SetVote(context.Background(), &SetVoteInput{
		RoomID:        "test-room-id",
		ParticipantID: "alex",
		OptionID:      "opt-2",
	})
	s.Require().NoError(err)

	votes, err := s.repo.GetVotesByRoom(context.Background(), &GetVotesByRoomInput{
		RoomID: "test-room-id",
	})
	s.Require().NoError(err)

	s.Equal(map[string]string{"alex": "opt-2"}, votes)
}

func (s *RedisRepositoryTestSuite) TestDeleteVotesByRoom() {
	err := s.repo.SetVote(context.Background(), &SetVoteInput{
		RoomID:        "test-room-id",
		ParticipantID: "alex",
		OptionID:      "opt-1",
	})
	s.Require().NoError(err)

	err = s.repo.DeleteVotesByRoom(context.Background(), &DeleteVotesByRoomInput{
		RoomID: "test-room-id",
	})
	s.Require().NoError(err)

	votes, err := s.repo.GetVotesByRoom(context.Background(), &GetVotesByRoomInput{
		RoomID: "test-room-id",
	})
	s.Require().NoError(err)
	s.Empty(votes)
}

func (s *RedisRepositoryTestSuite) TestGetVotesByRoomEmpty() {
	votes, err := s.repo.GetVotesByRoom(context.Background(), &GetVotesByRoomInput{
		RoomID: "no-votes",
	})
	s.Require().NoError(err)
	s.Empty(votes)
}

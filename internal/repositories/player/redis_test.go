package player

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/corkedgame/corked/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 11, 8, 19, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	player := &models.Player{
		ID:       "test-player-id",
		GameID:   "test-game-id",
		Name:     "Test Player",
		JoinedAt: s.testNow,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: player,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		GameID:   "test-game-id",
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.GameID, retrieved.GameID)
}

func (s *RedisRepositoryTestSuite) TestGetPlayer_NotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		GameID:   "test-game-id",
		PlayerID: "missing-player",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInGame_JoinOrder() {
	// Seat three players at different times, out of insertion order
	for i, p := range []struct {
		id     string
		offset time.Duration
	}{
		{"player-c", 2 * time.Minute},
		{"player-a", 0},
		{"player-b", time.Minute},
	} {
		err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
			Player: &models.Player{
				ID:       p.id,
				GameID:   "test-game-id",
				Name:     "Player " + string(rune('A'+i)),
				JoinedAt: s.testNow.Add(p.offset),
			},
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Players, 3)
	s.Equal("player-a", output.Players[0].ID)
	s.Equal("player-b", output.Players[1].ID)
	s.Equal("player-c", output.Players[2].ID)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInGame_Empty() {
	output, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{
		GameID: "empty-game",
	})
	s.Require().NoError(err)
	s.Empty(output.Players)
}

func (s *RedisRepositoryTestSuite) TestRemovePlayer() {
	player := &models.Player{
		ID:       "test-player-id",
		GameID:   "test-game-id",
		Name:     "Test Player",
		JoinedAt: s.testNow,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: player})
	s.Require().NoError(err)

	err = s.repo.RemovePlayer(context.Background(), &RemovePlayerInput{
		GameID:   "test-game-id",
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		GameID:   "test-game-id",
		PlayerID: "test-player-id",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)

	output, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Empty(output.Players)
}

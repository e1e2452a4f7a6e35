package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/corkedgame/corked/internal/models"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix      = "player:"
	gamePlayersKeyPrefix = "game_players:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(gameID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", playerKeyPrefix, gameID, playerID)
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player

	if player.ID == "" || player.GameID == "" {
		return errors.New("player ID and game ID cannot be empty")
	}

	// Marshal the player to JSON
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the player
	pipe.Set(ctx, playerKey(player.GameID, player.ID), playerJSON, 0)

	// Index the player in the game's roster, scored by join time so
	// the roster reads back in join order
	gamePlayersKey := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, player.GameID)
	pipe.ZAdd(ctx, gamePlayersKey, redis.Z{
		Score:  float64(player.JoinedAt.UnixNano()),
		Member: player.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by game and ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("input, game ID and player ID cannot be empty")
	}

	// Get the player from Redis
	playerJSON, err := r.client.Get(ctx, playerKey(input.GameID, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	// Unmarshal the player from JSON
	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayersInGame retrieves all players in a game from Redis
func (r *redisRepository) GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	// Get the roster in join order
	gamePlayersKey := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, input.GameID)
	playerIDs, err := r.client.ZRange(ctx, gamePlayersKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs: %w", err)
	}

	// If there are no players, return an empty slice
	if len(playerIDs) == 0 {
		return &GetPlayersInGameOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Get all players using a pipeline
	pipe := r.client.Pipeline()
	playerCommands := make([]*redis.StringCmd, 0, len(playerIDs))

	for _, playerID := range playerIDs {
		playerCommands = append(playerCommands, pipe.Get(ctx, playerKey(input.GameID, playerID)))
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	// Process the results, preserving join order
	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player was removed between reading the roster and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerIDs[i], err)
		}

		players = append(players, &player)
	}

	return &GetPlayersInGameOutput{
		Players: players,
	}, nil
}

// RemovePlayer removes a player from a game in Redis
func (r *redisRepository) RemovePlayer(ctx context.Context, input *RemovePlayerInput) error {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return errors.New("input, game ID and player ID cannot be empty")
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Delete the player and drop them from the roster
	pipe.Del(ctx, playerKey(input.GameID, input.PlayerID))

	gamePlayersKey := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, input.GameID)
	pipe.ZRem(ctx, gamePlayersKey, input.PlayerID)

	// Execute the transaction
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}

	return nil
}

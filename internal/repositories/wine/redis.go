package wine

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
	wineKeyPrefix       = "wine:"
	gameWinesKeyPrefix  = "game_wines:"
	roundWinesKeyPrefix = "round_wines:"
)

// ErrWineNotFound is returned when a wine is not found
var ErrWineNotFound = errors.New("wine not found")

// Config holds configuration for the Redis wine repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed wine repository
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

func wineKey(gameID, wineID string) string {
	return fmt.Sprintf("%s%s:%s", wineKeyPrefix, gameID, wineID)
}

func roundWinesKey(gameID string, roundID int) string {
	return fmt.Sprintf("%s%s:%d", roundWinesKeyPrefix, gameID, roundID)
}

// SaveWine persists a wine to Redis
func (r *redisRepository) SaveWine(ctx context.Context, input *SaveWineInput) error {
	if input == nil || input.Wine == nil {
		return errors.New("input and wine cannot be nil")
	}

	wine := input.Wine

	if wine.ID == "" || wine.GameID == "" {
		return errors.New("wine ID and game ID cannot be empty")
	}

	// Marshal the wine to JSON
	wineJSON, err := json.Marshal(wine)
	if err != nil {
		return fmt.Errorf("failed to marshal wine: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the wine
	pipe.Set(ctx, wineKey(wine.GameID, wine.ID), wineJSON, 0)

	// Index the wine in the game's list, scored by slot position
	gameWinesKey := fmt.Sprintf("%s%s", gameWinesKeyPrefix, wine.GameID)
	pipe.ZAdd(ctx, gameWinesKey, redis.Z{
		Score:  float64(wine.Position),
		Member: wine.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save wine: %w", err)
	}

	return nil
}

// GetWine retrieves a wine by game and ID from Redis
func (r *redisRepository) GetWine(ctx context.Context, input *GetWineInput) (*models.Wine, error) {
	if input == nil || input.GameID == "" || input.WineID == "" {
		return nil, errors.New("input, game ID and wine ID cannot be empty")
	}

	// Get the wine from Redis
	wineJSON, err := r.client.Get(ctx, wineKey(input.GameID, input.WineID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrWineNotFound
		}
		return nil, fmt.Errorf("failed to get wine: %w", err)
	}

	// Unmarshal the wine from JSON
	var wine models.Wine
	if err := json.Unmarshal([]byte(wineJSON), &wine); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wine: %w", err)
	}

	return &wine, nil
}

// GetWinesForGame retrieves all wines in a game from Redis
func (r *redisRepository) GetWinesForGame(ctx context.Context, input *GetWinesForGameInput) (*GetWinesForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	// Get the wine IDs in slot order
	gameWinesKey := fmt.Sprintf("%s%s", gameWinesKeyPrefix, input.GameID)
	wineIDs, err := r.client.ZRange(ctx, gameWinesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get wine IDs: %w", err)
	}

	// If there are no wines, return an empty slice
	if len(wineIDs) == 0 {
		return &GetWinesForGameOutput{
			Wines: []*models.Wine{},
		}, nil
	}

	// Get all wines using a pipeline
	pipe := r.client.Pipeline()
	wineCommands := make([]*redis.StringCmd, 0, len(wineIDs))

	for _, wineID := range wineIDs {
		wineCommands = append(wineCommands, pipe.Get(ctx, wineKey(input.GameID, wineID)))
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get wines: %w", err)
	}

	// Process the results, preserving slot order
	wines := make([]*models.Wine, 0, len(wineIDs))
	for i, cmd := range wineCommands {
		wineJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get wine %s: %w", wineIDs[i], err)
		}

		var wine models.Wine
		if err := json.Unmarshal([]byte(wineJSON), &wine); err != nil {
			return nil, fmt.Errorf("failed to unmarshal wine %s: %w", wineIDs[i], err)
		}

		wines = append(wines, &wine)
	}

	return &GetWinesForGameOutput{
		Wines: wines,
	}, nil
}

// SaveAssignments persists a round's wine assignments to Redis
func (r *redisRepository) SaveAssignments(ctx context.Context, input *SaveAssignmentsInput) error {
	if input == nil || len(input.Assignments) == 0 {
		return errors.New("input and assignments cannot be empty")
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	for _, assignment := range input.Assignments {
		if assignment.GameID == "" || assignment.RoundID < 1 || assignment.WineID == "" {
			return errors.New("assignment game ID, round ID and wine ID are required")
		}

		pipe.ZAdd(ctx, roundWinesKey(assignment.GameID, assignment.RoundID), redis.Z{
			Score:  float64(assignment.Position),
			Member: assignment.WineID,
		})
	}

	// Execute the transaction
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save assignments: %w", err)
	}

	return nil
}

// GetAssignmentsForRound retrieves a round's wine assignments from Redis
func (r *redisRepository) GetAssignmentsForRound(ctx context.Context, input *GetAssignmentsForRoundInput) (*GetAssignmentsForRoundOutput, error) {
	if input == nil || input.GameID == "" || input.RoundID < 1 {
		return nil, errors.New("input, game ID and round ID are required")
	}

	// Get the wine IDs with their positions, in position order
	members, err := r.client.ZRangeWithScores(ctx, roundWinesKey(input.GameID, input.RoundID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	assignments := make([]*models.RoundWineAssignment, 0, len(members))
	for _, member := range members {
		wineID, ok := member.Member.(string)
		if !ok {
			continue
		}
		assignments = append(assignments, &models.RoundWineAssignment{
			GameID:   input.GameID,
			RoundID:  input.RoundID,
			WineID:   wineID,
			Position: int(member.Score),
		})
	}

	return &GetAssignmentsForRoundOutput{
		Assignments: assignments,
	}, nil
}

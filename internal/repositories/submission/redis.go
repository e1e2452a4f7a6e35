package submission

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
	roundSubKeyPrefix     = "submission:"
	roundSubIndexPrefix   = "round_submissions:"
	gambitKeyPrefix       = "gambit:"
	gameGambitIndexPrefix = "game_gambits:"
)

// ErrSubmissionNotFound is returned when a submission is not found
var ErrSubmissionNotFound = errors.New("submission not found")

// Config holds configuration for the Redis submission repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed submission repository
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

func roundSubKey(gameID string, roundID int, playerID string) string {
	return fmt.Sprintf("%s%s:%d:%s", roundSubKeyPrefix, gameID, roundID, playerID)
}

func roundSubIndexKey(gameID string, roundID int) string {
	return fmt.Sprintf("%s%s:%d", roundSubIndexPrefix, gameID, roundID)
}

func gambitKey(gameID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", gambitKeyPrefix, gameID, playerID)
}

// SaveRoundSubmission upserts a round submission in Redis
func (r *redisRepository) SaveRoundSubmission(ctx context.Context, input *SaveRoundSubmissionInput) error {
	if input == nil || input.Submission == nil {
		return errors.New("input and submission cannot be nil")
	}

	sub := input.Submission

	if sub.GameID == "" || sub.RoundID < 1 || sub.PlayerID == "" {
		return errors.New("submission game ID, round ID and player ID are required")
	}

	// Marshal the submission to JSON
	subJSON, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	// Create a Redis transaction. Writing the key again overwrites any
	// prior submission, which is the upsert contract
	pipe := r.client.Pipeline()

	pipe.Set(ctx, roundSubKey(sub.GameID, sub.RoundID, sub.PlayerID), subJSON, 0)
	pipe.SAdd(ctx, roundSubIndexKey(sub.GameID, sub.RoundID), sub.PlayerID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetRoundSubmission retrieves one player's round submission from Redis
func (r *redisRepository) GetRoundSubmission(ctx context.Context, input *GetRoundSubmissionInput) (*models.RoundSubmission, error) {
	if input == nil || input.GameID == "" || input.RoundID < 1 || input.PlayerID == "" {
		return nil, errors.New("input, game ID, round ID and player ID are required")
	}

	subJSON, err := r.client.Get(ctx, roundSubKey(input.GameID, input.RoundID, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	var sub models.RoundSubmission
	if err := json.Unmarshal([]byte(subJSON), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}

	return &sub, nil
}

// GetSubmissionsForRound retrieves all submissions for a round from Redis
func (r *redisRepository) GetSubmissionsForRound(ctx context.Context, input *GetSubmissionsForRoundInput) (*GetSubmissionsForRoundOutput, error) {
	if input == nil || input.GameID == "" || input.RoundID < 1 {
		return nil, errors.New("input, game ID and round ID are required")
	}

	// Get the player IDs with submissions for the round
	playerIDs, err := r.client.SMembers(ctx, roundSubIndexKey(input.GameID, input.RoundID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get submission player IDs: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetSubmissionsForRoundOutput{
			Submissions: []*models.RoundSubmission{},
		}, nil
	}

	// Get all submissions using a pipeline
	pipe := r.client.Pipeline()
	subCommands := make([]*redis.StringCmd, 0, len(playerIDs))

	for _, playerID := range playerIDs {
		subCommands = append(subCommands, pipe.Get(ctx, roundSubKey(input.GameID, input.RoundID, playerID)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	subs := make([]*models.RoundSubmission, 0, len(playerIDs))
	for i, cmd := range subCommands {
		subJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get submission for %s: %w", playerIDs[i], err)
		}

		var sub models.RoundSubmission
		if err := json.Unmarshal([]byte(subJSON), &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission for %s: %w", playerIDs[i], err)
		}

		subs = append(subs, &sub)
	}

	return &GetSubmissionsForRoundOutput{
		Submissions: subs,
	}, nil
}

// SaveGambitSubmission upserts a gambit submission in Redis
func (r *redisRepository) SaveGambitSubmission(ctx context.Context, input *SaveGambitSubmissionInput) error {
	if input == nil || input.Submission == nil {
		return errors.New("input and submission cannot be nil")
	}

	sub := input.Submission

	if sub.GameID == "" || sub.PlayerID == "" {
		return errors.New("submission game ID and player ID are required")
	}

	subJSON, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal gambit submission: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, gambitKey(sub.GameID, sub.PlayerID), subJSON, 0)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", gameGambitIndexPrefix, sub.GameID), sub.PlayerID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save gambit submission: %w", err)
	}

	return nil
}

// GetGambitSubmission retrieves one player's gambit submission from Redis
func (r *redisRepository) GetGambitSubmission(ctx context.Context, input *GetGambitSubmissionInput) (*models.GambitSubmission, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("input, game ID and player ID are required")
	}

	subJSON, err := r.client.Get(ctx, gambitKey(input.GameID, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get gambit submission: %w", err)
	}

	var sub models.GambitSubmission
	if err := json.Unmarshal([]byte(subJSON), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gambit submission: %w", err)
	}

	return &sub, nil
}

// GetGambitSubmissionsForGame retrieves all gambit submissions for a game from Redis
func (r *redisRepository) GetGambitSubmissionsForGame(ctx context.Context, input *GetGambitSubmissionsForGameInput) (*GetGambitSubmissionsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", gameGambitIndexPrefix, input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get gambit player IDs: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetGambitSubmissionsForGameOutput{
			Submissions: []*models.GambitSubmission{},
		}, nil
	}

	pipe := r.client.Pipeline()
	subCommands := make([]*redis.StringCmd, 0, len(playerIDs))

	for _, playerID := range playerIDs {
		subCommands = append(subCommands, pipe.Get(ctx, gambitKey(input.GameID, playerID)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get gambit submissions: %w", err)
	}

	subs := make([]*models.GambitSubmission, 0, len(playerIDs))
	for i, cmd := range subCommands {
		subJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get gambit submission for %s: %w", playerIDs[i], err)
		}

		var sub models.GambitSubmission
		if err := json.Unmarshal([]byte(subJSON), &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal gambit submission for %s: %w", playerIDs[i], err)
		}

		subs = append(subs, &sub)
	}

	return &GetGambitSubmissionsForGameOutput{
		Submissions: subs,
	}, nil
}

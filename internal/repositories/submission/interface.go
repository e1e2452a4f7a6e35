package submission

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/corkedgame/corked/internal/repositories/submission Repository

import (
	"context"

	"github.com/corkedgame/corked/internal/models"
)

// Repository defines the interface for submission persistence. It covers
// both per-round ranking submissions and end-of-game gambit submissions,
// which share upsert semantics keyed by player.
type Repository interface {
	// SaveRoundSubmission upserts a player's submission for a round
	SaveRoundSubmission(ctx context.Context, input *SaveRoundSubmissionInput) error

	// GetRoundSubmission retrieves one player's submission for a round
	GetRoundSubmission(ctx context.Context, input *GetRoundSubmissionInput) (*models.RoundSubmission, error)

	// GetSubmissionsForRound retrieves all submissions for a round
	GetSubmissionsForRound(ctx context.Context, input *GetSubmissionsForRoundInput) (*GetSubmissionsForRoundOutput, error)

	// SaveGambitSubmission upserts a player's gambit submission
	SaveGambitSubmission(ctx context.Context, input *SaveGambitSubmissionInput) error

	// GetGambitSubmission retrieves one player's gambit submission
	GetGambitSubmission(ctx context.Context, input *GetGambitSubmissionInput) (*models.GambitSubmission, error)

	// GetGambitSubmissionsForGame retrieves all gambit submissions in a game
	GetGambitSubmissionsForGame(ctx context.Context, input *GetGambitSubmissionsForGameInput) (*GetGambitSubmissionsForGameOutput, error)
}

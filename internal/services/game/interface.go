package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/corkedgame/corked/internal/services/game Service

import "context"

// Service defines the interface for tasting game operations
type Service interface {
	// CreateGame creates a new tasting with its rounds, wine slots and
	// round assignments, and seats the host
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame seats a player in a game by join code
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// UpdateWine edits a wine's label, nickname or price
	UpdateWine(ctx context.Context, input *UpdateWineInput) (*UpdateWineOutput, error)

	// StartGame moves a fully priced game into round play
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitRanking records a player's ranking for the current round
	SubmitRanking(ctx context.Context, input *SubmitRankingInput) (*SubmitRankingOutput, error)

	// SaveDraft stores a player's in-progress notes and ranking without
	// counting as a submission
	SaveDraft(ctx context.Context, input *SaveDraftInput) (*SaveDraftOutput, error)

	// CloseRound closes the current round, backfilling submissions for
	// players who never submitted
	CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error)

	// AdvanceRound opens the next round, or moves the game to the
	// gambit phase after the final round
	AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error)

	// RevealRound scores the caller's submission for a closed round,
	// position by position
	RevealRound(ctx context.Context, input *RevealRoundInput) (*RevealRoundOutput, error)

	// SubmitGambit records a player's gambit picks
	SubmitGambit(ctx context.Context, input *SubmitGambitInput) (*SubmitGambitOutput, error)

	// FinishGame ends the gambit phase, backfilling blank gambit
	// submissions, and reveals final scores
	FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error)

	// BootPlayer removes a player from the game
	BootPlayer(ctx context.Context, input *BootPlayerInput) (*BootPlayerOutput, error)

	// GetGame returns the game, its seated players and its wines
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetRoundStatus returns a round's wines and submission progress
	GetRoundStatus(ctx context.Context, input *GetRoundStatusInput) (*GetRoundStatusOutput, error)

	// GetLeaderboard returns the current standings
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetGambitResult returns the caller's scored gambit picks once the
	// game is finished
	GetGambitResult(ctx context.Context, input *GetGambitResultInput) (*GetGambitResultOutput, error)
}

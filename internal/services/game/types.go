package game

import (
	"github.com/corkedgame/corked/internal/common/clock"
	"github.com/corkedgame/corked/internal/common/gamecode"
	"github.com/corkedgame/corked/internal/common/uuid"
	"github.com/corkedgame/corked/internal/models"
	"github.com/corkedgame/corked/internal/scoring"
	playerRepo "github.com/corkedgame/corked/internal/repositories/player"
	submissionRepo "github.com/corkedgame/corked/internal/repositories/submission"
	wineRepo "github.com/corkedgame/corked/internal/repositories/wine"

	gameRepo "github.com/corkedgame/corked/internal/repositories/game"
)

// Config holds the dependencies and settings for the game service
type Config struct {
	GameRepo       gameRepo.Repository
	PlayerRepo     playerRepo.Repository
	WineRepo       wineRepo.Repository
	SubmissionRepo submissionRepo.Repository
	Clock          clock.Clock
	UUIDGenerator  uuid.UUID
	CodeGenerator  gamecode.Generator

	// MaxPlayers is the seat cap applied when a game doesn't set its own
	MaxPlayers int
}

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	HostName        string
	MaxPlayers      int
	BottleCount     int
	BottlesPerRound int
}

// CreateGameOutput contains the result of creating a game
type CreateGameOutput struct {
	Game *models.Game
	Host *models.Player
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	GameCode   string
	PlayerName string

	// PlayerID makes the join idempotent for a returning player.
	// Empty for a first-time join
	PlayerID string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game   *models.Game
	Player *models.Player
}

// UpdateWineInput contains parameters for editing a wine. Nil fields are
// left unchanged
type UpdateWineInput struct {
	GameCode string
	HostID   string
	WineID   string
	Label    *string
	Nickname *string
	Price    *float64

	// ClearPrice unsets the price, returning the wine to unpriced
	ClearPrice bool
}

// UpdateWineOutput contains the result of editing a wine
type UpdateWineOutput struct {
	Wine *models.Wine
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameCode string
	HostID   string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Game *models.Game
}

// SubmitRankingInput contains parameters for submitting a ranking
type SubmitRankingInput struct {
	GameCode string
	RoundID  int
	PlayerID string
	Notes    string

	// Ranking is the guessed price order, most expensive first
	Ranking []string
}

// SubmitRankingOutput contains the result of submitting a ranking
type SubmitRankingOutput struct {
	Submission *models.RoundSubmission
}

// SaveDraftInput contains parameters for saving a draft
type SaveDraftInput struct {
	GameCode string
	RoundID  int
	PlayerID string
	Notes    string
	Ranking  []string
}

// SaveDraftOutput contains the result of saving a draft
type SaveDraftOutput struct {
	Submission *models.RoundSubmission
}

// CloseRoundInput contains parameters for closing a round
type CloseRoundInput struct {
	GameCode string
	RoundID  int
	HostID   string
}

// CloseRoundOutput contains the result of closing a round
type CloseRoundOutput struct {
	// AlreadyClosed is true when the round was closed before the call.
	// Closing twice is a silent success, not an error
	AlreadyClosed bool

	// Backfilled is how many submissions were synthesized for players
	// who never submitted
	Backfilled int
}

// AdvanceRoundInput contains parameters for advancing the game
type AdvanceRoundInput struct {
	GameCode string
	HostID   string
}

// AdvanceRoundOutput contains the result of advancing the game
type AdvanceRoundOutput struct {
	Game *models.Game

	// AlreadyFinished is true when round play was already over.
	// Advancing again is a silent success, not an error
	AlreadyFinished bool
}

// RevealRoundInput contains parameters for revealing a round's scoring
type RevealRoundInput struct {
	GameCode string
	RoundID  int
	PlayerID string
}

// RevealPosition is one position of a revealed submission
type RevealPosition struct {
	// Position is the 1-based rank position, most expensive first
	Position int

	// WineID is the wine the caller placed at this position
	WineID string

	// AcceptableWineIDs are the wines that score at this position
	AcceptableWineIDs []string

	// Correct is whether the caller's wine earned the point
	Correct bool

	// Tied is whether this position is part of a price tie
	Tied bool
}

// RevealRoundOutput contains the result of revealing a round
type RevealRoundOutput struct {
	Positions   []RevealPosition
	Notes       string
	TotalPoints int
	MaxPoints   int
}

// SubmitGambitInput contains parameters for submitting gambit picks
type SubmitGambitInput struct {
	GameCode            string
	PlayerID            string
	CheapestWineID      string
	MostExpensiveWineID string
	FavoriteWineIDs     []string
}

// SubmitGambitOutput contains the result of submitting gambit picks
type SubmitGambitOutput struct {
	Submission *models.GambitSubmission
}

// FinishGameInput contains parameters for finishing a game
type FinishGameInput struct {
	GameCode string
	HostID   string
}

// FinishGameOutput contains the result of finishing a game
type FinishGameOutput struct {
	// AlreadyFinished is true when the game was finished before the call
	AlreadyFinished bool

	// Backfilled is how many blank gambit submissions were synthesized
	Backfilled int
}

// BootPlayerInput contains parameters for booting a player
type BootPlayerInput struct {
	GameCode string
	HostID   string
	PlayerID string
}

// BootPlayerOutput contains the result of booting a player
type BootPlayerOutput struct {
	Success bool
}

// GetGameInput contains parameters for reading a game
type GetGameInput struct {
	GameCode string
}

// GetGameOutput contains the result of reading a game
type GetGameOutput struct {
	Game    *models.Game
	Players []*models.Player
	Wines   []*models.Wine
}

// GetRoundStatusInput contains parameters for reading a round's progress
type GetRoundStatusInput struct {
	GameCode string
	RoundID  int
}

// GetRoundStatusOutput contains the result of reading a round's progress
type GetRoundStatusOutput struct {
	Round *models.Round

	// Wines are the round's wines in pour order
	Wines []*models.Wine

	// SubmittedPlayerIDs are the players who have submitted, sorted
	SubmittedPlayerIDs []string

	// SeatedCount is how many players are currently seated
	SeatedCount int
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct {
	GameCode string
}

// GetLeaderboardOutput contains the result of reading the leaderboard
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetGambitResultInput contains parameters for reading a scored gambit
type GetGambitResultInput struct {
	GameCode string
	PlayerID string
}

// GetGambitResultOutput contains the result of reading a scored gambit
type GetGambitResultOutput struct {
	Submission *models.GambitSubmission
	Sets       scoring.GambitSets
	Score      scoring.GambitScore
}

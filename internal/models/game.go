package models

import (
	"time"
)

// GameStatus represents the current lifecycle state of a game
type GameStatus string

const (
	// GameStatusSetup indicates a game is being configured and has no players yet
	GameStatusSetup GameStatus = "setup"

	// GameStatusLobby indicates a game is waiting for players to join
	GameStatusLobby GameStatus = "lobby"

	// GameStatusInProgress indicates tasting rounds are being played
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusGambit indicates round play is over and players are making gambit picks
	GameStatusGambit GameStatus = "gambit"

	// GameStatusFinished indicates the game is over and all scores are revealed
	GameStatusFinished GameStatus = "finished"
)

// Game represents a blind tasting game session
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Code is the short alphanumeric code players use to join
	Code string

	// HostID is the player ID of the host
	HostID string

	// Status is the current lifecycle state of the game
	Status GameStatus

	// CurrentRound is the 1-based pointer to the round being played
	CurrentRound int

	// TotalRounds is the number of configured rounds
	TotalRounds int

	// MaxPlayers is the seat cap for the game
	MaxPlayers int

	// BottleCount is the number of wines in the tasting
	BottleCount int

	// BottlesPerRound is the number of wines poured each round
	BottlesPerRound int

	// Rounds holds one entry per configured round, all created closed
	Rounds []*Round

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// Round returns the round with the given 1-based id, or nil
func (g *Game) Round(id int) *Round {
	if id < 1 || id > len(g.Rounds) {
		return nil
	}
	return g.Rounds[id-1]
}

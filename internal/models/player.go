package models

import (
	"time"
)

// Player represents a seated participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// GameID is the game the player is seated in
	GameID string

	// Name is the display name of the player
	Name string

	// JoinedAt is when the player joined the game
	JoinedAt time.Time
}

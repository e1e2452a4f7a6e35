package models

import (
	"time"
)

// RoundSubmission represents one player's answer for one round
type RoundSubmission struct {
	// GameID is the game the submission belongs to
	GameID string

	// RoundID is the 1-based round number
	RoundID int

	// PlayerID is the submitting player
	PlayerID string

	// Notes is free-text tasting notes
	Notes string

	// Ranking is the player's guessed price order of the round's wines,
	// most expensive first
	Ranking []string

	// Draft marks a saved-but-not-submitted ranking. Drafts do not count
	// as submitted; a valid draft is promoted at round close
	Draft bool

	// Backfilled marks a submission synthesized at round close for a
	// player who never submitted
	Backfilled bool

	// SubmittedAt is when the submission was last written
	SubmittedAt time.Time
}

// GambitSubmission represents one player's end-of-game side bet
type GambitSubmission struct {
	// GameID is the game the submission belongs to
	GameID string

	// PlayerID is the submitting player
	PlayerID string

	// CheapestWineID is the pick for the cheapest wine overall.
	// Empty means the player never picked
	CheapestWineID string

	// MostExpensiveWineID is the pick for the most expensive wine overall
	MostExpensiveWineID string

	// FavoriteWineIDs are the player's favorites. Never scored
	FavoriteWineIDs []string

	// Backfilled marks a blank submission synthesized at game finish
	Backfilled bool

	// SubmittedAt is when the submission was last written
	SubmittedAt time.Time
}

package models

// LeaderboardEntry represents one player's standing
type LeaderboardEntry struct {
	// PlayerID is the player this entry belongs to
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the player's total points across all completed rounds,
	// plus gambit points once the game is finished
	Score int

	// Delta is the points from the most recently completed round, or the
	// gambit points once the game is finished and picks are revealed
	Delta int

	// Rank is the display rank. Tied scores share a rank number
	Rank int
}

// Leaderboard represents the current standings in a game
type Leaderboard struct {
	// GameCode is the short code of the game
	GameCode string

	// Entries are the standings, sorted by descending score
	Entries []*LeaderboardEntry

	// GambitRevealed is whether the entries include gambit points
	GambitRevealed bool
}

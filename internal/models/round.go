package models

// RoundState represents whether a round is accepting submissions
type RoundState string

const (
	// RoundStateOpen indicates the round is accepting submissions
	RoundStateOpen RoundState = "open"

	// RoundStateClosed indicates the round is not currently open.
	// Rounds are created closed, so closed alone does not mean played;
	// a round is complete only once it is closed and has submissions.
	RoundStateClosed RoundState = "closed"
)

// Round represents one tasting round within a game
type Round struct {
	// ID is the 1-based round number within the game
	ID int

	// State is whether the round is accepting submissions
	State RoundState
}

// RoundWineAssignment relates a round to one of the wines tasted in it
type RoundWineAssignment struct {
	// GameID is the game the assignment belongs to
	GameID string

	// RoundID is the 1-based round number
	RoundID int

	// WineID is the assigned wine
	WineID string

	// Position is the pour order within the round, used only for display
	Position int
}

package wine

import "github.com/corkedgame/corked/internal/models"

// SaveWineInput contains parameters for saving a wine
type SaveWineInput struct {
	Wine *models.Wine
}

// GetWineInput contains parameters for retrieving a wine
type GetWineInput struct {
	GameID string
	WineID string
}

// GetWinesForGameInput contains parameters for retrieving a game's wines
type GetWinesForGameInput struct {
	GameID string
}

// GetWinesForGameOutput contains the result of retrieving a game's wines
type GetWinesForGameOutput struct {
	Wines []*models.Wine
}

// SaveAssignmentsInput contains parameters for saving a round's assignments
type SaveAssignmentsInput struct {
	Assignments []*models.RoundWineAssignment
}

// GetAssignmentsForRoundInput contains parameters for retrieving a round's assignments
type GetAssignmentsForRoundInput struct {
	GameID  string
	RoundID int
}

// GetAssignmentsForRoundOutput contains the result of retrieving a round's assignments
type GetAssignmentsForRoundOutput struct {
	Assignments []*models.RoundWineAssignment
}

package wine

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/corkedgame/corked/internal/repositories/wine Repository

import (
	"context"

	"github.com/corkedgame/corked/internal/models"
)

// Repository defines the interface for wine and assignment persistence
type Repository interface {
	// SaveWine persists a wine
	SaveWine(ctx context.Context, input *SaveWineInput) error

	// GetWine retrieves a wine belonging to a game
	GetWine(ctx context.Context, input *GetWineInput) (*models.Wine, error)

	// GetWinesForGame retrieves all wines in a game, in slot order
	GetWinesForGame(ctx context.Context, input *GetWinesForGameInput) (*GetWinesForGameOutput, error)

	// SaveAssignments persists the wine assignments for a round
	SaveAssignments(ctx context.Context, input *SaveAssignmentsInput) error

	// GetAssignmentsForRound retrieves a round's wine assignments, in
	// position order
	GetAssignmentsForRound(ctx context.Context, input *GetAssignmentsForRoundInput) (*GetAssignmentsForRoundOutput, error)
}

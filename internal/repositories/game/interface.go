package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/corkedgame/corked/internal/repositories/game Repository

import (
	"context"

	"github.com/corkedgame/corked/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game and its rounds
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByCode retrieves a game by its join code
	GetGameByCode(ctx context.Context, input *GetGameByCodeInput) (*models.Game, error)
}

package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/corkedgame/corked/internal/repositories/player Repository

import (
	"context"

	"github.com/corkedgame/corked/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player seated in a game
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInGame retrieves all players in a game, in join order
	GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error)

	// RemovePlayer removes a player from a game
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) error
}

package game

import "github.com/corkedgame/corked/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameByCodeInput struct {
	Code string
}

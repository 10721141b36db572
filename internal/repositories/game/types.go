package game

import "github.com/Edaad/allin-sub000/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGamesByHostInput struct {
	HostID string
}

type DeleteGameInput struct {
	GameID string
}

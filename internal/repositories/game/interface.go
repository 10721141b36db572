package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Edaad/allin-sub000/internal/repositories/game Repository

import (
	"context"

	"github.com/Edaad/allin-sub000/internal/models"
)

// Repository defines the interface for game data persistence. The admission
// engine only ever reads games; the write methods exist for seeding and tooling.
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGamesByHost retrieves all games hosted by a member, oldest first
	GetGamesByHost(ctx context.Context, input *GetGamesByHostInput) ([]*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}

package waitlist

import (
	"github.com/Edaad/allin-sub000/internal/models"
	playerRepo "github.com/Edaad/allin-sub000/internal/repositories/player"
)

// Config holds configuration for the waitlist service
type Config struct {
	// Repository dependencies
	PlayerRepo playerRepo.Repository
}

// GetPositionInput contains parameters for computing a waitlist position
type GetPositionInput struct {
	GameID   string
	Identity models.Identity
}

// GetPositionOutput contains the 1-based waitlist position
type GetPositionOutput struct {
	Position int
}

// PromoteNextInput contains parameters for promoting into a freed seat. A
// Capacity of zero or less means the game has no seat limit.
type PromoteNextInput struct {
	GameID   string
	Capacity int
}

// PromoteNextOutput reports the outcome of a promotion attempt
type PromoteNextOutput struct {
	// Promoted indicates a player was seated
	Promoted bool

	// Player is the promoted record, nil when the waitlist was empty
	Player *models.Player
}

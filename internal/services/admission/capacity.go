package admission

import "github.com/Edaad/allin-sub000/internal/models"

// CapacityPolicy turns a game into a seat limit. The same admission state
// machine serves capacity-bounded games and unbounded group membership; only
// the policy differs between the two instantiations.
type CapacityPolicy interface {
	// SeatLimit returns the maximum number of accepted players, or zero or
	// less for no limit
	SeatLimit(game *models.Game) int
}

// BoundedCapacity limits accepted players to the game's capacity
type BoundedCapacity struct{}

// SeatLimit returns the game's capacity
func (BoundedCapacity) SeatLimit(game *models.Game) int {
	return game.Capacity
}

// UnboundedCapacity never limits accepted players; used for group-style
// membership where every approved member is seated
type UnboundedCapacity struct{}

// SeatLimit reports no limit
func (UnboundedCapacity) SeatLimit(*models.Game) int {
	return 0
}

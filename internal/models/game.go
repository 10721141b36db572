package models

import (
	"time"
)

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	// GameStatusUpcoming indicates a game that has not yet been played
	GameStatusUpcoming GameStatus = "upcoming"

	// GameStatusCompleted indicates a game that has finished
	GameStatusCompleted GameStatus = "completed"
)

// Game represents a capacity-bounded, host-owned game that players join.
// The admission engine reads games and never writes them.
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// HostID is the member ID of the host
	HostID string

	// Capacity is the maximum number of simultaneously accepted players ("handed")
	Capacity int

	// IsPublic indicates whether non-invited players may request to join
	IsPublic bool

	// Status is the lifecycle state of the game
	Status GameStatus

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

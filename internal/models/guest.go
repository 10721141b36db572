package models

import (
	"time"
)

// JoinHistoryEntry mirrors one game's admission status for a guest. Guests
// have no account to hold participation state, so the profile carries it.
type JoinHistoryEntry struct {
	// GameID is the game the guest joined or asked to join
	GameID string

	// Status is the admission status of the guest's record in that game
	Status PlayerStatus
}

// GuestProfile represents an anonymous guest, deduplicated by phone number
type GuestProfile struct {
	// ID is the unique identifier for the guest
	ID string

	// Phone is the contact phone number; it is the natural key for guests
	Phone string

	// Name is the display name given on the most recent join attempt
	Name string

	// Email is optional contact email
	Email string

	// JoinHistory lists the guest's participation across games, ordered by
	// when each game was first joined
	JoinHistory []JoinHistoryEntry

	// CreatedAt is when the profile was first created
	CreatedAt time.Time

	// UpdatedAt is when the profile was last updated
	UpdatedAt time.Time
}

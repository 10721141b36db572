package models

import (
	"time"
)

// PlayerStatus represents the admission state of a player in a game
type PlayerStatus string

const (
	// PlayerStatusPending indicates an invitation awaiting the invitee's answer
	PlayerStatusPending PlayerStatus = "pending"

	// PlayerStatusRequested indicates a join request awaiting the host's answer
	PlayerStatusRequested PlayerStatus = "requested"

	// PlayerStatusWaitlistRequested indicates a join request made while the game
	// was already full; it still needs the host's answer
	PlayerStatusWaitlistRequested PlayerStatus = "waitlist_requested"

	// PlayerStatusAccepted indicates a seated player
	PlayerStatusAccepted PlayerStatus = "accepted"

	// PlayerStatusWaitlist indicates an approved player waiting for a seat
	PlayerStatusWaitlist PlayerStatus = "waitlist"

	// PlayerStatusRejected indicates a join request the host turned down.
	// Rejected records are retained for history; every other exit deletes
	// the record.
	PlayerStatusRejected PlayerStatus = "rejected"
)

// IsWaitlistClass reports whether the status participates in waitlist ordering
func (s PlayerStatus) IsWaitlistClass() bool {
	return s == PlayerStatusWaitlist || s == PlayerStatusWaitlistRequested
}

// IsRequestClass reports whether the status is an open join request
func (s PlayerStatus) IsRequestClass() bool {
	return s == PlayerStatusRequested || s == PlayerStatusWaitlistRequested
}

// Player represents one identity's admission record for one game.
// At most one record exists per (game, identity) pair.
type Player struct {
	// ID is a unique identifier for this record
	ID string

	// GameID is the ID of the game
	GameID string

	// Identity is who this record belongs to
	Identity Identity

	// Status is the current admission state
	Status PlayerStatus

	// RejectionReason is set exactly when Status is rejected
	RejectionReason string

	// CreatedAt is when the record was created; it orders the waitlist
	CreatedAt time.Time

	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}

package waitlist

import "errors"

// Define errors
var (
	// ErrNotOnWaitlist is returned when a position is requested for a player
	// whose record is not in the waitlist class
	ErrNotOnWaitlist = errors.New("player is not on the waitlist")
)

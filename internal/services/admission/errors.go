package admission

import "errors"

// Define errors
var (
	ErrGameNotFound    = errors.New("game not found")
	ErrRecordNotFound  = errors.New("admission record not found")
	ErrUnauthorized    = errors.New("actor is not allowed to perform this operation")
	ErrDuplicateRecord = errors.New("player already has a record for this game")
	ErrInvalidState    = errors.New("operation not permitted from the current status")
	ErrPrivateGame     = errors.New("game is not open to join requests")
	ErrNotOnWaitlist   = errors.New("player is not on the waitlist")
)

package player

import "github.com/Edaad/allin-sub000/internal/models"

// CreateRecordInput contains parameters for creating an admission record
type CreateRecordInput struct {
	Player *models.Player
}

// GetRecordInput contains parameters for retrieving a record
type GetRecordInput struct {
	GameID   string
	Identity models.Identity
}

// ListRecordsInput contains parameters for listing a game's records
type ListRecordsInput struct {
	GameID string
}

// ListRecordsOutput contains the result of listing a game's records
type ListRecordsOutput struct {
	Players []*models.Player
}

// UpdateRecordInput contains parameters for updating a record
type UpdateRecordInput struct {
	Player *models.Player
}

// DeleteRecordInput contains parameters for deleting a record
type DeleteRecordInput struct {
	GameID   string
	Identity models.Identity
}

// CountAcceptedInput contains parameters for counting accepted players
type CountAcceptedInput struct {
	GameID string
}

// AcceptIfUnderCapacityInput contains parameters for the capacity-gated
// accept. A Capacity of zero or less means the game has no seat limit.
type AcceptIfUnderCapacityInput struct {
	GameID   string
	Identity models.Identity
	Capacity int
}

// AcceptIfUnderCapacityOutput reports where the record landed
type AcceptIfUnderCapacityOutput struct {
	// Status is PlayerStatusAccepted when a seat was free, otherwise
	// PlayerStatusWaitlist
	Status models.PlayerStatus
}

// WaitlistRankInput contains parameters for computing a waitlist position
type WaitlistRankInput struct {
	GameID   string
	Identity models.Identity
}

// EarliestWaitlistedInput contains parameters for finding the promotion candidate
type EarliestWaitlistedInput struct {
	GameID string
}

package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Edaad/allin-sub000/internal/repositories/player Repository

import (
	"context"

	"github.com/Edaad/allin-sub000/internal/models"
)

// Repository defines the interface for player admission records. It is the
// authoritative store of one record per (game, identity) pair and carries the
// two atomic primitives the admission rules depend on: insert-if-absent for
// uniqueness and a capacity-gated accept that cannot overbook.
type Repository interface {
	// CreateRecord persists a new record, failing with ErrDuplicateRecord if
	// one already exists for the same game and identity
	CreateRecord(ctx context.Context, input *CreateRecordInput) error

	// GetRecord retrieves the record for a game and identity
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.Player, error)

	// ListRecords retrieves all records for a game
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)

	// UpdateRecord rewrites an existing record and its status indexes
	UpdateRecord(ctx context.Context, input *UpdateRecordInput) error

	// DeleteRecord removes a record and its index entries
	DeleteRecord(ctx context.Context, input *DeleteRecordInput) error

	// CountAccepted returns the number of accepted players in a game
	CountAccepted(ctx context.Context, input *CountAcceptedInput) (int, error)

	// AcceptIfUnderCapacity atomically seats the record if the accepted count
	// is below capacity, otherwise moves it to the waitlist
	AcceptIfUnderCapacity(ctx context.Context, input *AcceptIfUnderCapacityInput) (*AcceptIfUnderCapacityOutput, error)

	// WaitlistRank returns the 1-based position of a record among the game's
	// waitlist-class records, ordered by creation time
	WaitlistRank(ctx context.Context, input *WaitlistRankInput) (int, error)

	// EarliestWaitlisted returns the earliest-created record with status
	// waitlist, or nil if the waitlist holds none
	EarliestWaitlisted(ctx context.Context, input *EarliestWaitlistedInput) (*models.Player, error)
}

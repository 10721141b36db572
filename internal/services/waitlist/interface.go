package waitlist

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/Edaad/allin-sub000/internal/services/waitlist Service

import "context"

// Service computes waitlist ordering for a game and selects the next player
// to seat when a vacancy opens.
type Service interface {
	// GetPosition returns the 1-based waitlist position of a player
	GetPosition(ctx context.Context, input *GetPositionInput) (*GetPositionOutput, error)

	// PromoteNext seats the earliest waitlisted player. Callers invoke it
	// exactly once per vacancy, immediately after an accepted record is
	// deleted, under the same per-game exclusion as the removal.
	PromoteNext(ctx context.Context, input *PromoteNextInput) (*PromoteNextOutput, error)
}

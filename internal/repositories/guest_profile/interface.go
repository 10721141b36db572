package guest_profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Edaad/allin-sub000/internal/repositories/guest_profile Repository

import (
	"context"

	"github.com/Edaad/allin-sub000/internal/models"
)

// Repository defines the interface for guest profile persistence. Phone
// number is the natural key: one profile exists per phone, however many
// times the guest shows up under different display names.
type Repository interface {
	// CreateGuest persists a new guest profile, failing with
	// ErrDuplicateGuest if the phone number is already registered
	CreateGuest(ctx context.Context, input *CreateGuestInput) error

	// GetGuest retrieves a guest profile by ID
	GetGuest(ctx context.Context, input *GetGuestInput) (*models.GuestProfile, error)

	// GetGuestByPhone retrieves a guest profile by phone number
	GetGuestByPhone(ctx context.Context, input *GetGuestByPhoneInput) (*models.GuestProfile, error)

	// UpdateGuest rewrites an existing guest profile
	UpdateGuest(ctx context.Context, input *UpdateGuestInput) error

	// UpsertJoinHistory sets the guest's join-history entry for a game,
	// appending one if none exists
	UpsertJoinHistory(ctx context.Context, input *UpsertJoinHistoryInput) error

	// RemoveJoinHistory deletes the guest's join-history entry for a game
	RemoveJoinHistory(ctx context.Context, input *RemoveJoinHistoryInput) error
}

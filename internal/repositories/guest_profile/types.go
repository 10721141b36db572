package guest_profile

import "github.com/Edaad/allin-sub000/internal/models"

// CreateGuestInput contains parameters for creating a guest profile
type CreateGuestInput struct {
	Guest *models.GuestProfile
}

// GetGuestInput contains parameters for retrieving a guest by ID
type GetGuestInput struct {
	GuestID string
}

// GetGuestByPhoneInput contains parameters for retrieving a guest by phone
type GetGuestByPhoneInput struct {
	Phone string
}

// UpdateGuestInput contains parameters for updating a guest profile
type UpdateGuestInput struct {
	Guest *models.GuestProfile
}

// UpsertJoinHistoryInput contains parameters for mirroring a game status
// into the guest's join history
type UpsertJoinHistoryInput struct {
	GuestID string
	GameID  string
	Status  models.PlayerStatus
}

// RemoveJoinHistoryInput contains parameters for removing a game from the
// guest's join history
type RemoveJoinHistoryInput struct {
	GuestID string
	GameID  string
}

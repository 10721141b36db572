package identity

import (
	"github.com/Edaad/allin-sub000/internal/common/clock"
	"github.com/Edaad/allin-sub000/internal/common/uuid"
	"github.com/Edaad/allin-sub000/internal/models"
	guestRepo "github.com/Edaad/allin-sub000/internal/repositories/guest_profile"
)

// Config holds configuration for the identity service
type Config struct {
	// Repository dependencies
	GuestRepo guestRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// ResolveGuestInput contains the contact details from a guest join attempt
type ResolveGuestInput struct {
	// Phone is the guest's contact number; it is the natural key
	Phone string

	// Name is the display name given on this attempt
	Name string

	// Email is optional contact email
	Email string
}

// ResolveGuestOutput contains the resolved guest identity
type ResolveGuestOutput struct {
	// Identity is the stable guest identity used as the join key
	Identity models.Identity

	// Guest is the profile backing the identity
	Guest *models.GuestProfile

	// Created indicates a new profile was created for this phone number
	Created bool
}

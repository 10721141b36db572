package identity

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/Edaad/allin-sub000/internal/services/identity Service

import "context"

// Service resolves inbound join attempts to canonical participant identities.
// Members carry their own IDs; guests are deduplicated by phone number so
// that the same person joining twice under different display names collapses
// to one identity.
type Service interface {
	// ResolveGuest finds or creates the guest identity for a phone number
	ResolveGuest(ctx context.Context, input *ResolveGuestInput) (*ResolveGuestOutput, error)
}

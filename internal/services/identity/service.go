package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Edaad/allin-sub000/internal/common/clock"
	"github.com/Edaad/allin-sub000/internal/common/uuid"
	"github.com/Edaad/allin-sub000/internal/models"
	guestRepo "github.com/Edaad/allin-sub000/internal/repositories/guest_profile"
)

// service implements the Service interface
type service struct {
	guestRepo guestRepo.Repository
	clock     clock.Clock
	uuider    uuid.UUID
}

// NewService creates a new identity service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GuestRepo == nil {
		return nil, errors.New("guest repository cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	u := cfg.UUIDGenerator
	if u == nil {
		u = uuid.New()
	}

	return &service{
		guestRepo: cfg.GuestRepo,
		clock:     c,
		uuider:    u,
	}, nil
}

// ResolveGuest finds or creates the guest identity for a phone number. A
// changed display name or email refreshes the profile but never rewrites
// the guest's existing admission records, which reference the stable ID.
func (s *service) ResolveGuest(ctx context.Context, input *ResolveGuestInput) (*ResolveGuestOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	guest, err := s.guestRepo.GetGuestByPhone(ctx, &guestRepo.GetGuestByPhoneInput{
		Phone: phone,
	})
	if err == nil {
		// Known guest; refresh contact details if they changed
		if guest.Name != name || (input.Email != "" && guest.Email != input.Email) {
			guest.Name = name
			if input.Email != "" {
				guest.Email = input.Email
			}
			guest.UpdatedAt = s.clock.Now()

			if err := s.guestRepo.UpdateGuest(ctx, &guestRepo.UpdateGuestInput{Guest: guest}); err != nil {
				return nil, fmt.Errorf("failed to refresh guest profile: %w", err)
			}
		}

		return &ResolveGuestOutput{
			Identity: models.GuestIdentity(guest.ID),
			Guest:    guest,
		}, nil
	}

	if !errors.Is(err, guestRepo.ErrGuestNotFound) {
		return nil, err
	}

	// New phone number: create a profile
	now := s.clock.Now()
	guest = &models.GuestProfile{
		ID:        s.uuider.NewUUID(),
		Phone:     phone,
		Name:      name,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.guestRepo.CreateGuest(ctx, &guestRepo.CreateGuestInput{Guest: guest})
	if err == nil {
		return &ResolveGuestOutput{
			Identity: models.GuestIdentity(guest.ID),
			Guest:    guest,
			Created:  true,
		}, nil
	}

	// Another resolve for the same phone won the race; use its profile
	if errors.Is(err, guestRepo.ErrDuplicateGuest) {
		guest, err = s.guestRepo.GetGuestByPhone(ctx, &guestRepo.GetGuestByPhoneInput{
			Phone: phone,
		})
		if err != nil {
			return nil, err
		}

		return &ResolveGuestOutput{
			Identity: models.GuestIdentity(guest.ID),
			Guest:    guest,
		}, nil
	}

	return nil, err
}

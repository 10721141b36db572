package waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/Edaad/allin-sub000/internal/models"
	playerRepo "github.com/Edaad/allin-sub000/internal/repositories/player"
)

// service implements the Service interface
type service struct {
	playerRepo playerRepo.Repository
}

// NewService creates a new waitlist service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	return &service{
		playerRepo: cfg.PlayerRepo,
	}, nil
}

// GetPosition returns the 1-based rank among the game's waitlist-class
// records, ordered by creation time
func (s *service) GetPosition(ctx context.Context, input *GetPositionInput) (*GetPositionOutput, error) {
	if input == nil || input.GameID == "" || input.Identity.IsZero() {
		return nil, errors.New("input, game ID and identity cannot be empty")
	}

	rank, err := s.playerRepo.WaitlistRank(ctx, &playerRepo.WaitlistRankInput{
		GameID:   input.GameID,
		Identity: input.Identity,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrNotOnWaitlist) {
			return nil, ErrNotOnWaitlist
		}
		return nil, fmt.Errorf("failed to get waitlist rank: %w", err)
	}

	return &GetPositionOutput{
		Position: rank,
	}, nil
}

// PromoteNext seats the earliest-created player with status waitlist.
// Queued join requests stay put: they still need the host's answer.
func (s *service) PromoteNext(ctx context.Context, input *PromoteNextInput) (*PromoteNextOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	candidate, err := s.playerRepo.EarliestWaitlisted(ctx, &playerRepo.EarliestWaitlistedInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find promotion candidate: %w", err)
	}

	if candidate == nil {
		return &PromoteNextOutput{}, nil
	}

	// The conditional accept re-checks capacity, so a promotion attempt
	// against a game that is somehow still full leaves the player waitlisted
	out, err := s.playerRepo.AcceptIfUnderCapacity(ctx, &playerRepo.AcceptIfUnderCapacityInput{
		GameID:   input.GameID,
		Identity: candidate.Identity,
		Capacity: input.Capacity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to promote player: %w", err)
	}

	if out.Status != models.PlayerStatusAccepted {
		return &PromoteNextOutput{}, nil
	}

	candidate.Status = models.PlayerStatusAccepted
	return &PromoteNextOutput{
		Promoted: true,
		Player:   candidate,
	}, nil
}

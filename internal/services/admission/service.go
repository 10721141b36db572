package admission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/Edaad/allin-sub000/internal/common/clock"
	"github.com/Edaad/allin-sub000/internal/common/uuid"
	"github.com/Edaad/allin-sub000/internal/models"
	gameRepo "github.com/Edaad/allin-sub000/internal/repositories/game"
	guestRepo "github.com/Edaad/allin-sub000/internal/repositories/guest_profile"
	playerRepo "github.com/Edaad/allin-sub000/internal/repositories/player"
	"github.com/Edaad/allin-sub000/internal/services/identity"
	"github.com/Edaad/allin-sub000/internal/services/notifier"
	"github.com/Edaad/allin-sub000/internal/services/waitlist"
)

// service implements the Service interface
type service struct {
	gameRepo    gameRepo.Repository
	playerRepo  playerRepo.Repository
	guestRepo   guestRepo.Repository
	identitySvc identity.Service
	waitlistSvc waitlist.Service
	notifier    notifier.Service
	capacity    CapacityPolicy
	clock       clock.Clock
	uuider      uuid.UUID
	locks       gameLocks
}

// NewService creates a new admission service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameRepo == nil {
		return nil, errors.New("game repository cannot be nil")
	}
	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}
	if cfg.GuestRepo == nil {
		return nil, errors.New("guest repository cannot be nil")
	}
	if cfg.IdentityService == nil {
		return nil, errors.New("identity service cannot be nil")
	}
	if cfg.WaitlistService == nil {
		return nil, errors.New("waitlist service cannot be nil")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	capacity := cfg.Capacity
	if capacity == nil {
		capacity = BoundedCapacity{}
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
		gameRepo:    cfg.GameRepo,
		playerRepo:  cfg.PlayerRepo,
		guestRepo:   cfg.GuestRepo,
		identitySvc: cfg.IdentityService,
		waitlistSvc: cfg.WaitlistService,
		notifier:    cfg.Notifier,
		capacity:    capacity,
		clock:       c,
		uuider:      u,
	}, nil
}

// loadUpcomingGame fetches a game and rejects mutations on completed games
func (s *service) loadUpcomingGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if game.Status != models.GameStatusUpcoming {
		return nil, ErrInvalidState
	}

	return game, nil
}

// getRecord fetches a record, mapping the repository's not-found sentinel
func (s *service) getRecord(ctx context.Context, gameID string, id models.Identity) (*models.Player, error) {
	record, err := s.playerRepo.GetRecord(ctx, &playerRepo.GetRecordInput{
		GameID:   gameID,
		Identity: id,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

// notify emits a notification, swallowing failures. The state change has
// already committed; delivery problems must not surface as operation errors.
func (s *service) notify(ctx context.Context, input *notifier.EmitInput) {
	if err := s.notifier.Emit(ctx, input); err != nil {
		log.Printf("failed to emit %s notification for game %s: %v", input.Type, input.GameID, err)
	}
}

// mirrorGuestHistory keeps a guest's join history in step with their record.
// Mirror failures on status transitions are logged, not propagated; the
// history converges on the guest's next write.
func (s *service) mirrorGuestHistory(ctx context.Context, id models.Identity, gameID string, status models.PlayerStatus) {
	if !id.IsGuest() {
		return
	}

	err := s.guestRepo.UpsertJoinHistory(ctx, &guestRepo.UpsertJoinHistoryInput{
		GuestID: id.ID,
		GameID:  gameID,
		Status:  status,
	})
	if err != nil {
		log.Printf("failed to mirror join history for guest %s in game %s: %v", id.ID, gameID, err)
	}
}

// dropGuestHistory removes a game from a guest's join history
func (s *service) dropGuestHistory(ctx context.Context, id models.Identity, gameID string) {
	if !id.IsGuest() {
		return
	}

	err := s.guestRepo.RemoveJoinHistory(ctx, &guestRepo.RemoveJoinHistoryInput{
		GuestID: id.ID,
		GameID:  gameID,
	})
	if err != nil {
		log.Printf("failed to remove join history for guest %s in game %s: %v", id.ID, gameID, err)
	}
}

func isHost(actor models.Identity, game *models.Game) bool {
	return actor.IsMember() && actor.ID == game.HostID
}

// InvitePlayers creates pending invitations for a batch of members
func (s *service) InvitePlayers(ctx context.Context, input *InvitePlayersInput) (*InvitePlayersOutput, error) {
	if input == nil || input.GameID == "" || input.InviterID == "" {
		return nil, errors.New("input, game ID and inviter ID cannot be empty")
	}
	if len(input.InviteeIDs) == 0 {
		return nil, errors.New("invitee IDs cannot be empty")
	}

	unlock := s.locks.lock(input.GameID)
	defer unlock()

	game, err := s.loadUpcomingGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if input.InviterID != game.HostID {
		return nil, ErrUnauthorized
	}

	hostIdentity := models.MemberIdentity(game.HostID)
	now := s.clock.Now()
	out := &InvitePlayersOutput{}

	for _, inviteeID := range input.InviteeIDs {
		invitee := models.MemberIdentity(inviteeID)

		err := s.playerRepo.CreateRecord(ctx, &playerRepo.CreateRecordInput{
			Player: &models.Player{
				ID:        s.uuider.NewUUID(),
				GameID:    input.GameID,
				Identity:  invitee,
				Status:    models.PlayerStatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			},
		})
		if err != nil {
			// An existing record of any status skips the invitee
			if errors.Is(err, playerRepo.ErrDuplicateRecord) {
				out.AlreadyInvited = append(out.AlreadyInvited, invitee)
				continue
			}
			return nil, fmt.Errorf("failed to invite player %s: %w", inviteeID, err)
		}

		out.Invited = append(out.Invited, invitee)

		s.notify(ctx, &notifier.EmitInput{
			Type:      notifier.EventInviteSent,
			GameID:    input.GameID,
			Recipient: invitee,
			Actor:     hostIdentity,
		})
	}

	return out, nil
}

// CancelInvite withdraws a pending invitation
func (s *service) CancelInvite(ctx context.Context, input *CancelInviteInput) (*CancelInviteOutput, error) {
	if input == nil || input.GameID == "" || input.HostID == "" || input.InviteeID == "" {
		return nil, errors.New("input, game ID, host ID and invitee ID cannot be empty")
	}

	unlock := s.locks.lock(input.GameID)
	defer unlock()

	game, err := s.loadUpcomingGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if input.HostID != game.HostID {
		return nil, ErrUnauthorized
	}

	invitee := models.MemberIdentity(input.InviteeID)

	record, err := s.getRecord(ctx, input.GameID, invitee)
	if err != nil {
		return nil, err
	}

	if record.Status != models.PlayerStatusPending {
		return nil, ErrInvalidState
	}

	err = s.playerRepo.DeleteRecord(ctx, &playerRepo.DeleteRecordInput{
		GameID:   input.GameID,
		Identity: invitee,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel invitation: %w", err)
	}

	s.notify(ctx, &notifier.EmitInput{
		Type:      notifier.EventInviteCancelled,
		GameID:    input.GameID,
		Recipient: invitee,
		Actor:     models.MemberIdentity(game.HostID),
	})

	return &CancelInviteOutput{}, nil
}

// RequestToJoin records a join request against a public game. Guests are
// resolved to a stable identity by phone, and the guest's join history is
// written in the same unit as the record: if the history write fails, the
// record insert is compensated with a delete.
func (s *service) RequestToJoin(ctx context.Context, input *RequestToJoinInput) (*RequestToJoinOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}
	if (input.MemberID == "") == (input.Guest == nil) {
		return nil, errors.New("exactly one of member ID or guest contact must be set")
	}

	// Resolve the identity before taking the game lock; guest resolution
	// touches only the guest store
	var requester models.Identity
	if input.MemberID != "" {
		requester = models.MemberIdentity(input.MemberID)
	} else {
		resolved, err := s.identitySvc.ResolveGuest(ctx, &identity.ResolveGuestInput{
			Phone: input.Guest.Phone,
			Name:  input.Guest.Name,
			Email: input.Guest.Email,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve guest: %w", err)
		}
		requester = resolved.Identity
	}

	unlock := s.locks.lock(input.GameID)
	defer unlock()

	game, err := s.loadUpcomingGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if !game.IsPublic {
		return nil, ErrPrivateGame
	}

	// A full game queues the request rather than refusing it
	status := models.PlayerStatusRequested
	limit := s.capacity.SeatLimit(game)
	if limit > 0 {
		accepted, err := s.playerRepo.CountAccepted(ctx, &playerRepo.CountAcceptedInput{
			GameID: input.GameID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to count accepted players: %w", err)
		}
		if accepted >= limit {
			status = models.PlayerStatusWaitlistRequested
		}
	}

	now := s.clock.Now()
	record := &models.Player{
		ID:        s.uuider.NewUUID(),
		GameID:    input.GameID,
		Identity:  requester,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.playerRepo.CreateRecord(ctx, &playerRepo.CreateRecordInput{Player: record})
	if err != nil {
		if errors.Is(err, playerRepo.ErrDuplicateRecord) {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}

	// The guest's join history must agree with the record; compensate the
	// insert if the history write fails
	if requester.IsGuest() {
		err := s.guestRepo.UpsertJoinHistory(ctx, &guestRepo.UpsertJoinHistoryInput{
			GuestID: requester.ID,
			GameID:  input.GameID,
			Status:  status,
		})
		if err != nil {
			if delErr := s.playerRepo.DeleteRecord(ctx, &playerRepo.DeleteRecordInput{
				GameID:   input.GameID,
				Identity: requester,
			}); delErr != nil {
				log.Printf("failed to compensate join request for guest %s in game %s: %v", requester.ID, input.GameID, delErr)
			}
			return nil, fmt.Errorf("failed to record guest join history: %w", err)
		}
	}

	s.notify(ctx, &notifier.EmitInput{
		Type:      notifier.EventJoinRequested,
		GameID:    input.GameID,
		Recipient: models.MemberIdentity(game.HostID),
		Actor:     requester,
	})

	return &RequestToJoinOutput{Player: record}, nil
}

// AcceptInvitation answers a pending invitation. Capacity is checked at the
// moment of acceptance, not at invite time; when every seat is taken the
// player overflows onto the waitlist.
func (s *service) AcceptInvitation(ctx context.Context, input *AcceptInvitationInput) (*AcceptInvitationOutput, error) {
	if input == nil || input.GameID == "" || input.Identity.IsZero() {
		return nil, errors.New("input, game ID and identity cannot be empty")
	}

	unlock := s.locks.lock(input.GameID)
	defer unlock()

	game, err := s.loadUpcomingGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	record, err := s.getRecord(ctx, input.GameID, input.Identity)
	if err != nil {
		return nil, err
	}

	if record.Status != models.PlayerStatusPending {
		return nil, ErrInvalidState
	}

	out, err := s.playerRepo.AcceptIfUnderCapacity(ctx, &playerRepo.AcceptIfUnderCapacityInput{
		GameID:   input.GameID,
		Identity: input.Identity,
		Capacity: s.capacity.SeatLimit(game),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	s.mirrorGuestHistory(ctx, input.Identity, input.GameID, out.Status)

	s.notify(ctx, &notifier.EmitInput{
		Type:      notifier.EventInviteAccepted,
		GameID:    input.GameID,
		Recipient: models.MemberIdentity(game.HostID),
		Actor:     input.Identity,
		Payload:   map[string]string{"status": string(out.Status)},
	})

	return &AcceptInvitationOutput{Status: out.Status}, nil
}

// AcceptJoinRequest approves a join request as the host
func (s *service) AcceptJoinRequest(ctx context.Context, input *AcceptJoinRequestInput) (*AcceptJoinRequestOutput, error) {
	if input == nil || input.GameID == "" || input.HostID == "" || input.Identity.IsZero() {
		return nil, errors.New("input, game ID, host ID and identity cannot be empty")
	}

	unlock := s.locks.lock(input.GameID)
	defer unlock()

	game, err := s.loadUpcomingGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if input.HostID != game.HostID {
		return nil, ErrUnauthorized
	}

	record, err := s.getRecord(ctx, input.GameID, input.Identity)
	if err != nil {
		return nil, err
	}

	if !record.Status.IsRequestClass() {
		return nil, ErrInvalidState
	}

	out, err := s.playerRepo.AcceptIfUnderCapacity(ctx, &playerRepo.AcceptIfUnderCapacityInput{
		GameID:   input.GameID,
		Identity: input.Identity,
		Capacity: s.capacity.SeatLimit(game),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to accept join request: %w", err)
	}

	s.mirrorGuestHistory(ctx, input.Identity, input.GameID, out.Status)

	s.notify(ctx, &notifier.EmitInput{
		Type:      notifier.EventRequestAccepted,
		GameID:    input.GameID,
		Recipient: input.Identity,
		Actor:     models.MemberIdentity(game.HostID),
		Payload:   map[string]string{"status": string(out.Status)},
	})

	return &AcceptJoinRequestOutput{Status: out.Status}, nil
}

// DeclineInvitation declines an invitation, deleting the record
func (s *service) DeclineInvitation(ctx context.Context, input *DeclineInvitationInput) (*DeclineInvitationOutput, error) {
	if input == nil || input.GameID == "" || input.Identity.IsZero() {
		return nil, errors.New("input, game ID and identity cannot be empty")
	}

	unlock := s.locks.lock(input.GameID)
	defer unlock()

	game, err := s.loadUpcomingGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	record, err := s.getRecord(ctx, input.GameID, input.Identity)
	if err != nil {
		return nil, err
	}

	// Rejected records are retained for history and cannot be declined away.
	// Seated players leave through RemoveParticipant, which refills the
	// vacated seat from the waitlist; letting them decline would strand the
	// game below capacity.
	switch record.Status {
	case models.PlayerStatusRejected, models.PlayerStatusAccepted:
		return nil, ErrInvalidState
	}

	err = s.playerRepo.DeleteRecord(ctx, &playerRepo.DeleteRecordInput{
		GameID:   input.GameID,
		Identity: input.Identity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decline invitation: %w", err)
	}

	s.dropGuestHistory(ctx, input.Identity, input.GameID)

	s.notify(ctx, &notifier.EmitInput{
		Type:      notifier.EventInviteDeclined,
		GameID:    input.GameID,
		Recipient: models.MemberIdentity(game.HostID),
		Actor:     input.Identity,
	})

	return &DeclineInvitationOutput{}, nil
}

// RejectJoinRequest turns down a join request; the record is kept with its
// reason so the requester can see what happened
func (s *service) RejectJoinRequest(ctx context.Context, input *RejectJoinRequestInput) (*RejectJoinRequestOutput, error) {
	if input == nil || input.GameID == "" || input.HostID == "" || input.Identity.IsZero() {
		return nil, errors.New("input, game ID, host ID and identity cannot be empty")
	}

	unlock := s.locks.lock(input.GameID)
	defer unlock()

	game, err := s.loadUpcomingGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if input.HostID != game.HostID {
		return nil, ErrUnauthorized
	}

	record, err := s.getRecord(ctx, input.GameID, input.Identity)
	if err != nil {
		return nil, err
	}

	if !record.Status.IsRequestClass() {
		return nil, ErrInvalidState
	}

	record.Status = models.PlayerStatusRejected
	record.RejectionReason = input.Reason
	record.UpdatedAt = s.clock.Now()

	err = s.playerRepo.UpdateRecord(ctx, &playerRepo.UpdateRecordInput{Player: record})
	if err != nil {
		return nil, fmt.Errorf("failed to reject join request: %w", err)
	}

	s.mirrorGuestHistory(ctx, input.Identity, input.GameID, models.PlayerStatusRejected)

	s.notify(ctx, &notifier.EmitInput{
		Type:      notifier.EventRequestRejected,
		GameID:    input.GameID,
		Recipient: input.Identity,
		Actor:     models.MemberIdentity(game.HostID),
		Payload:   map[string]string{"reason": input.Reason},
	})

	return &RejectJoinRequestOutput{}, nil
}

// RemoveParticipant removes a player from a game. The host removing a player
// and a player leaving share this path; only the notification differs. When
// the removed player held a seat, the earliest waitlisted player is promoted
// under the same lock, exactly once per vacancy.
func (s *service) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	if input == nil || input.GameID == "" || input.Actor.IsZero() || input.Target.IsZero() {
		return nil, errors.New("input, game ID, actor and target cannot be empty")
	}

	unlock := s.locks.lock(input.GameID)
	defer unlock()

	game, err := s.loadUpcomingGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	selfRemoval := input.Actor.Equal(input.Target)
	if !selfRemoval && !isHost(input.Actor, game) {
		return nil, ErrUnauthorized
	}

	record, err := s.getRecord(ctx, input.GameID, input.Target)
	if err != nil {
		return nil, err
	}

	switch record.Status {
	case models.PlayerStatusAccepted, models.PlayerStatusWaitlist, models.PlayerStatusRequested:
	default:
		return nil, ErrInvalidState
	}

	wasAccepted := record.Status == models.PlayerStatusAccepted

	err = s.playerRepo.DeleteRecord(ctx, &playerRepo.DeleteRecordInput{
		GameID:   input.GameID,
		Identity: input.Target,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove participant: %w", err)
	}

	s.dropGuestHistory(ctx, input.Target, input.GameID)

	out := &RemoveParticipantOutput{}

	// Only a vacated seat triggers promotion
	if wasAccepted {
		promoted, err := s.waitlistSvc.PromoteNext(ctx, &waitlist.PromoteNextInput{
			GameID:   input.GameID,
			Capacity: s.capacity.SeatLimit(game),
		})
		if err != nil {
			return nil, fmt.Errorf("participant removed but promotion failed: %w", err)
		}

		if promoted.Promoted {
			out.Promoted = true
			out.PromotedIdentity = promoted.Player.Identity

			s.mirrorGuestHistory(ctx, promoted.Player.Identity, input.GameID, models.PlayerStatusAccepted)

			s.notify(ctx, &notifier.EmitInput{
				Type:      notifier.EventWaitlistPromoted,
				GameID:    input.GameID,
				Recipient: promoted.Player.Identity,
				Actor:     models.MemberIdentity(game.HostID),
			})
		}
	}

	if selfRemoval {
		s.notify(ctx, &notifier.EmitInput{
			Type:      notifier.EventParticipantLeft,
			GameID:    input.GameID,
			Recipient: models.MemberIdentity(game.HostID),
			Actor:     input.Actor,
		})
	} else {
		s.notify(ctx, &notifier.EmitInput{
			Type:      notifier.EventParticipantRemoved,
			GameID:    input.GameID,
			Recipient: input.Target,
			Actor:     input.Actor,
		})
	}

	return out, nil
}

// GetWaitlistPosition returns a player's 1-based waitlist position. Position
// is informational, so the read runs without the game lock.
func (s *service) GetWaitlistPosition(ctx context.Context, input *GetWaitlistPositionInput) (*GetWaitlistPositionOutput, error) {
	if input == nil || input.GameID == "" || input.Identity.IsZero() {
		return nil, errors.New("input, game ID and identity cannot be empty")
	}

	out, err := s.waitlistSvc.GetPosition(ctx, &waitlist.GetPositionInput{
		GameID:   input.GameID,
		Identity: input.Identity,
	})
	if err != nil {
		if errors.Is(err, waitlist.ErrNotOnWaitlist) {
			return nil, ErrNotOnWaitlist
		}
		return nil, err
	}

	return &GetWaitlistPositionOutput{
		Position: out.Position,
	}, nil
}

// ListParticipants returns the roster grouped by status, each group ordered
// by creation time. Queued join requests appear under Requested: the host
// still owes them an answer.
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	records, err := s.playerRepo.ListRecords(ctx, &playerRepo.ListRecordsInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	players := records.Players
	sort.Slice(players, func(i, j int) bool {
		return players[i].CreatedAt.Before(players[j].CreatedAt)
	})

	out := &ListParticipantsOutput{}
	for _, p := range players {
		switch {
		case p.Status == models.PlayerStatusAccepted:
			out.Accepted = append(out.Accepted, p)
		case p.Status == models.PlayerStatusWaitlist:
			out.Waitlisted = append(out.Waitlisted, p)
		case p.Status.IsRequestClass():
			out.Requested = append(out.Requested, p)
		case p.Status == models.PlayerStatusPending:
			out.Pending = append(out.Pending, p)
		case p.Status == models.PlayerStatusRejected:
			out.Rejected = append(out.Rejected, p)
		}
	}

	return out, nil
}

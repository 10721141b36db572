package admission

import (
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

// Config holds configuration for the admission service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	GuestRepo  guestRepo.Repository

	// Service dependencies
	IdentityService identity.Service
	WaitlistService waitlist.Service
	Notifier        notifier.Service
	Clock           clock.Clock
	UUIDGenerator   uuid.UUID

	// Capacity decides the seat limit per game; defaults to BoundedCapacity
	Capacity CapacityPolicy
}

// InvitePlayersInput contains parameters for inviting members to a game
type InvitePlayersInput struct {
	// GameID is the game being invited to
	GameID string

	// InviterID is the member ID of the actor; must be the host
	InviterID string

	// InviteeIDs are the member IDs to invite
	InviteeIDs []string
}

// InvitePlayersOutput reports, per invitee, whether an invitation was created
type InvitePlayersOutput struct {
	// Invited lists identities that received a new invitation
	Invited []models.Identity

	// AlreadyInvited lists identities that already had a record and were skipped
	AlreadyInvited []models.Identity
}

// CancelInviteInput contains parameters for withdrawing an invitation
type CancelInviteInput struct {
	GameID    string
	HostID    string
	InviteeID string
}

// CancelInviteOutput contains the result of withdrawing an invitation
type CancelInviteOutput struct{}

// GuestContact carries the contact details of a guest join attempt
type GuestContact struct {
	Phone string
	Name  string
	Email string
}

// RequestToJoinInput contains parameters for requesting to join a public
// game. Exactly one of MemberID or Guest must be set.
type RequestToJoinInput struct {
	GameID string

	// MemberID identifies a registered member requesting to join
	MemberID string

	// Guest carries the contact details of an anonymous guest
	Guest *GuestContact
}

// RequestToJoinOutput contains the created request record
type RequestToJoinOutput struct {
	// Player is the created record; its status is requested, or
	// waitlist_requested when the game was already full
	Player *models.Player
}

// AcceptInvitationInput contains parameters for answering an invitation
type AcceptInvitationInput struct {
	GameID   string
	Identity models.Identity
}

// AcceptInvitationOutput reports where the player landed
type AcceptInvitationOutput struct {
	// Status is accepted when a seat was free, otherwise waitlist
	Status models.PlayerStatus
}

// AcceptJoinRequestInput contains parameters for approving a join request
type AcceptJoinRequestInput struct {
	GameID   string
	HostID   string
	Identity models.Identity
}

// AcceptJoinRequestOutput reports where the player landed
type AcceptJoinRequestOutput struct {
	// Status is accepted when a seat was free, otherwise waitlist
	Status models.PlayerStatus
}

// DeclineInvitationInput contains parameters for declining an invitation
type DeclineInvitationInput struct {
	GameID   string
	Identity models.Identity
}

// DeclineInvitationOutput contains the result of declining an invitation
type DeclineInvitationOutput struct{}

// RejectJoinRequestInput contains parameters for turning down a join request
type RejectJoinRequestInput struct {
	GameID   string
	HostID   string
	Identity models.Identity

	// Reason is stored on the retained record
	Reason string
}

// RejectJoinRequestOutput contains the result of turning down a join request
type RejectJoinRequestOutput struct{}

// RemoveParticipantInput contains parameters for removing a player. The
// actor is either the host or the player themselves (leaving).
type RemoveParticipantInput struct {
	GameID string
	Actor  models.Identity
	Target models.Identity
}

// RemoveParticipantOutput reports the removal and any resulting promotion
type RemoveParticipantOutput struct {
	// Promoted indicates a waitlisted player took the freed seat
	Promoted bool

	// PromotedIdentity is the seated player's identity when Promoted is true
	PromotedIdentity models.Identity
}

// GetWaitlistPositionInput contains parameters for a position lookup
type GetWaitlistPositionInput struct {
	GameID   string
	Identity models.Identity
}

// GetWaitlistPositionOutput contains the 1-based waitlist position
type GetWaitlistPositionOutput struct {
	Position int
}

// ListParticipantsInput contains parameters for listing a game's roster
type ListParticipantsInput struct {
	GameID string
}

// ListParticipantsOutput groups the roster by status, each group ordered by
// creation time
type ListParticipantsOutput struct {
	Accepted   []*models.Player
	Waitlisted []*models.Player
	Requested  []*models.Player
	Pending    []*models.Player
	Rejected   []*models.Player
}

package admission

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/Edaad/allin-sub000/internal/services/admission Service

import "context"

// Service defines the interface for admission operations. Every mutation
// against the same game is serialized, so capacity can never be overbooked.
type Service interface {
	// InvitePlayers creates pending invitations for a batch of members.
	// Invitations are non-reserving: a game may carry more pending
	// invitations than seats.
	InvitePlayers(ctx context.Context, input *InvitePlayersInput) (*InvitePlayersOutput, error)

	// CancelInvite withdraws a pending invitation
	CancelInvite(ctx context.Context, input *CancelInviteInput) (*CancelInviteOutput, error)

	// RequestToJoin records a member's or guest's request to join a public game
	RequestToJoin(ctx context.Context, input *RequestToJoinInput) (*RequestToJoinOutput, error)

	// AcceptInvitation answers an invitation; the player is seated if a seat
	// is free at that moment, otherwise waitlisted
	AcceptInvitation(ctx context.Context, input *AcceptInvitationInput) (*AcceptInvitationOutput, error)

	// AcceptJoinRequest approves a join request as the host
	AcceptJoinRequest(ctx context.Context, input *AcceptJoinRequestInput) (*AcceptJoinRequestOutput, error)

	// DeclineInvitation declines an invitation, deleting the record
	DeclineInvitation(ctx context.Context, input *DeclineInvitationInput) (*DeclineInvitationOutput, error)

	// RejectJoinRequest turns down a join request with a reason; the record
	// is retained for history
	RejectJoinRequest(ctx context.Context, input *RejectJoinRequestInput) (*RejectJoinRequestOutput, error)

	// RemoveParticipant removes a player, either by the host or by the
	// player leaving; vacating a seat promotes the earliest waitlisted player
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// GetWaitlistPosition returns a player's 1-based waitlist position
	GetWaitlistPosition(ctx context.Context, input *GetWaitlistPositionInput) (*GetWaitlistPositionOutput, error)

	// ListParticipants returns the game's roster grouped by status
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)
}

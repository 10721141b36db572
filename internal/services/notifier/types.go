package notifier

import (
	"log"

	"github.com/Edaad/allin-sub000/internal/models"
)

// EventType identifies what happened; one exists per admission operation
type EventType string

const (
	// EventInviteSent tells an invitee the host invited them
	EventInviteSent EventType = "invite_sent"

	// EventInviteCancelled tells an invitee the host withdrew the invitation
	EventInviteCancelled EventType = "invite_cancelled"

	// EventInviteAccepted tells the host an invitee accepted
	EventInviteAccepted EventType = "invite_accepted"

	// EventInviteDeclined tells the host an invitee declined
	EventInviteDeclined EventType = "invite_declined"

	// EventJoinRequested tells the host someone asked to join
	EventJoinRequested EventType = "join_requested"

	// EventRequestAccepted tells a requester the host let them in
	EventRequestAccepted EventType = "request_accepted"

	// EventRequestRejected tells a requester the host turned them down
	EventRequestRejected EventType = "request_rejected"

	// EventParticipantRemoved tells a player the host removed them
	EventParticipantRemoved EventType = "participant_removed"

	// EventParticipantLeft tells the host a player left on their own
	EventParticipantLeft EventType = "participant_left"

	// EventWaitlistPromoted tells a waitlisted player a seat opened for them
	EventWaitlistPromoted EventType = "waitlist_promoted"
)

// EmitInput describes one notification event
type EmitInput struct {
	// Type is what happened
	Type EventType

	// GameID is the game the event concerns
	GameID string

	// Recipient is who should hear about it
	Recipient models.Identity

	// Actor is who caused it
	Actor models.Identity

	// Payload carries event-specific details, e.g. a rejection reason
	Payload map[string]string
}

// Config holds configuration for the log notifier service
type Config struct {
	// Logger receives delivered notifications; defaults to the standard logger
	Logger *log.Logger
}

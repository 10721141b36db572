package admission

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/Edaad/allin-sub000/internal/common/clock/mocks"
	uuidMocks "github.com/Edaad/allin-sub000/internal/common/uuid/mocks"
	"github.com/Edaad/allin-sub000/internal/models"
	gameMocks "github.com/Edaad/allin-sub000/internal/repositories/game/mocks"
	guestRepo "github.com/Edaad/allin-sub000/internal/repositories/guest_profile"
	guestMocks "github.com/Edaad/allin-sub000/internal/repositories/guest_profile/mocks"
	playerRepo "github.com/Edaad/allin-sub000/internal/repositories/player"
	playerMocks "github.com/Edaad/allin-sub000/internal/repositories/player/mocks"
	"github.com/Edaad/allin-sub000/internal/services/identity"
	identityMocks "github.com/Edaad/allin-sub000/internal/services/identity/mocks"
	"github.com/Edaad/allin-sub000/internal/services/notifier"
	notifierMocks "github.com/Edaad/allin-sub000/internal/services/notifier/mocks"
	"github.com/Edaad/allin-sub000/internal/services/waitlist"
	waitlistMocks "github.com/Edaad/allin-sub000/internal/services/waitlist/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdmissionServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGameRepo    *gameMocks.MockRepository
	mockPlayerRepo  *playerMocks.MockRepository
	mockGuestRepo   *guestMocks.MockRepository
	mockIdentitySvc *identityMocks.MockService
	mockWaitlistSvc *waitlistMocks.MockService
	mockNotifier    *notifierMocks.MockService
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	service         Service
	ctx             context.Context

	// Test data
	testTime   time.Time
	testGameID string
	testHostID string

	// Reusable test fixtures
	testGame     *models.Game
	hostIdentity models.Identity
}

func (s *AdmissionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockGuestRepo = guestMocks.NewMockRepository(s.mockCtrl)
	s.mockIdentitySvc = identityMocks.NewMockService(s.mockCtrl)
	s.mockWaitlistSvc = waitlistMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = notifierMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testHostID = "test-host-id"
	s.hostIdentity = models.MemberIdentity(s.testHostID)

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Public two-seat game hosted by the test host
	s.testGame = &models.Game{
		ID:        s.testGameID,
		HostID:    s.testHostID,
		Capacity:  2,
		IsPublic:  true,
		Status:    models.GameStatusUpcoming,
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	svc, err := NewService(&Config{
		GameRepo:        s.mockGameRepo,
		PlayerRepo:      s.mockPlayerRepo,
		GuestRepo:       s.mockGuestRepo,
		IdentityService: s.mockIdentitySvc,
		WaitlistService: s.mockWaitlistSvc,
		Notifier:        s.mockNotifier,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *AdmissionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdmissionServiceTestSuite))
}

// expectGame wires the game repo to return the suite's fixture game
func (s *AdmissionServiceTestSuite) expectGame() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(s.testGame, nil)
}

func (s *AdmissionServiceTestSuite) record(id models.Identity, status models.PlayerStatus) *models.Player {
	return &models.Player{
		ID:        "record-" + id.ID,
		GameID:    s.testGameID,
		Identity:  id,
		Status:    status,
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}
}

func (s *AdmissionServiceTestSuite) TestInvitePlayers() {
	s.expectGame()

	invitees := []string{"member-1", "member-2"}
	s.mockUUID.EXPECT().NewUUID().Return("record-1")
	s.mockUUID.EXPECT().NewUUID().Return("record-2")

	s.mockPlayerRepo.EXPECT().
		CreateRecord(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.CreateRecordInput) error {
			s.Equal(s.testGameID, input.Player.GameID)
			s.Equal(models.PlayerStatusPending, input.Player.Status)
			s.Equal(s.testTime, input.Player.CreatedAt)
			return nil
		}).
		Times(2)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventInviteSent,
			GameID:    s.testGameID,
			Recipient: models.MemberIdentity("member-1"),
			Actor:     s.hostIdentity,
		}).
		Return(nil)
	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventInviteSent,
			GameID:    s.testGameID,
			Recipient: models.MemberIdentity("member-2"),
			Actor:     s.hostIdentity,
		}).
		Return(nil)

	out, err := s.service.InvitePlayers(s.ctx, &InvitePlayersInput{
		GameID:     s.testGameID,
		InviterID:  s.testHostID,
		InviteeIDs: invitees,
	})
	s.Require().NoError(err)
	s.Len(out.Invited, 2)
	s.Empty(out.AlreadyInvited)
}

func (s *AdmissionServiceTestSuite) TestInvitePlayersSkipsAlreadyInvited() {
	s.expectGame()

	s.mockUUID.EXPECT().NewUUID().Return("record-1")
	s.mockUUID.EXPECT().NewUUID().Return("record-2")

	// The first invitee already has a record; the second is new
	gomock.InOrder(
		s.mockPlayerRepo.EXPECT().
			CreateRecord(s.ctx, gomock.Any()).
			Return(playerRepo.ErrDuplicateRecord),
		s.mockPlayerRepo.EXPECT().
			CreateRecord(s.ctx, gomock.Any()).
			Return(nil),
	)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.service.InvitePlayers(s.ctx, &InvitePlayersInput{
		GameID:     s.testGameID,
		InviterID:  s.testHostID,
		InviteeIDs: []string{"member-1", "member-2"},
	})
	s.Require().NoError(err)
	s.Equal([]models.Identity{models.MemberIdentity("member-2")}, out.Invited)
	s.Equal([]models.Identity{models.MemberIdentity("member-1")}, out.AlreadyInvited)
}

func (s *AdmissionServiceTestSuite) TestInvitePlayersNotHost() {
	s.expectGame()

	_, err := s.service.InvitePlayers(s.ctx, &InvitePlayersInput{
		GameID:     s.testGameID,
		InviterID:  "member-1",
		InviteeIDs: []string{"member-2"},
	})
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *AdmissionServiceTestSuite) TestInvitePlayersGameNotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(nil, errors.New("game not found"))

	_, err := s.service.InvitePlayers(s.ctx, &InvitePlayersInput{
		GameID:     s.testGameID,
		InviterID:  s.testHostID,
		InviteeIDs: []string{"member-1"},
	})
	s.Error(err)
}

func (s *AdmissionServiceTestSuite) TestInvitePlayersCompletedGame() {
	completed := *s.testGame
	completed.Status = models.GameStatusCompleted
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(&completed, nil)

	_, err := s.service.InvitePlayers(s.ctx, &InvitePlayersInput{
		GameID:     s.testGameID,
		InviterID:  s.testHostID,
		InviteeIDs: []string{"member-1"},
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *AdmissionServiceTestSuite) TestCancelInvite() {
	s.expectGame()

	invitee := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, &playerRepo.GetRecordInput{
			GameID:   s.testGameID,
			Identity: invitee,
		}).
		Return(s.record(invitee, models.PlayerStatusPending), nil)

	s.mockPlayerRepo.EXPECT().
		DeleteRecord(s.ctx, &playerRepo.DeleteRecordInput{
			GameID:   s.testGameID,
			Identity: invitee,
		}).
		Return(nil)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventInviteCancelled,
			GameID:    s.testGameID,
			Recipient: invitee,
			Actor:     s.hostIdentity,
		}).
		Return(nil)

	_, err := s.service.CancelInvite(s.ctx, &CancelInviteInput{
		GameID:    s.testGameID,
		HostID:    s.testHostID,
		InviteeID: "member-1",
	})
	s.Require().NoError(err)
}

func (s *AdmissionServiceTestSuite) TestCancelInviteWrongStatus() {
	s.expectGame()

	invitee := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(invitee, models.PlayerStatusAccepted), nil)

	_, err := s.service.CancelInvite(s.ctx, &CancelInviteInput{
		GameID:    s.testGameID,
		HostID:    s.testHostID,
		InviteeID: "member-1",
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *AdmissionServiceTestSuite) TestRequestToJoinMember() {
	s.expectGame()

	// One seat of two taken: the request stays a plain request
	s.mockPlayerRepo.EXPECT().
		CountAccepted(s.ctx, &playerRepo.CountAcceptedInput{GameID: s.testGameID}).
		Return(1, nil)

	s.mockUUID.EXPECT().NewUUID().Return("record-1")

	s.mockPlayerRepo.EXPECT().
		CreateRecord(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.CreateRecordInput) error {
			s.Equal(models.PlayerStatusRequested, input.Player.Status)
			s.Equal(models.MemberIdentity("member-1"), input.Player.Identity)
			return nil
		})

	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventJoinRequested,
			GameID:    s.testGameID,
			Recipient: s.hostIdentity,
			Actor:     models.MemberIdentity("member-1"),
		}).
		Return(nil)

	out, err := s.service.RequestToJoin(s.ctx, &RequestToJoinInput{
		GameID:   s.testGameID,
		MemberID: "member-1",
	})
	s.Require().NoError(err)
	s.Equal(models.PlayerStatusRequested, out.Player.Status)
}

func (s *AdmissionServiceTestSuite) TestRequestToJoinFullGameQueues() {
	s.expectGame()

	// Both seats taken: the request lands in the waitlist-requested state
	s.mockPlayerRepo.EXPECT().
		CountAccepted(s.ctx, gomock.Any()).
		Return(2, nil)

	s.mockUUID.EXPECT().NewUUID().Return("record-1")

	s.mockPlayerRepo.EXPECT().
		CreateRecord(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.CreateRecordInput) error {
			s.Equal(models.PlayerStatusWaitlistRequested, input.Player.Status)
			return nil
		})

	s.mockNotifier.EXPECT().Emit(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.RequestToJoin(s.ctx, &RequestToJoinInput{
		GameID:   s.testGameID,
		MemberID: "member-1",
	})
	s.Require().NoError(err)
	s.Equal(models.PlayerStatusWaitlistRequested, out.Player.Status)
}

func (s *AdmissionServiceTestSuite) TestRequestToJoinPrivateGame() {
	private := *s.testGame
	private.IsPublic = false
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		Return(&private, nil)

	_, err := s.service.RequestToJoin(s.ctx, &RequestToJoinInput{
		GameID:   s.testGameID,
		MemberID: "member-1",
	})
	s.ErrorIs(err, ErrPrivateGame)
}

func (s *AdmissionServiceTestSuite) TestRequestToJoinGuest() {
	guestIdentity := models.GuestIdentity("guest-1")

	s.mockIdentitySvc.EXPECT().
		ResolveGuest(s.ctx, &identity.ResolveGuestInput{
			Phone: "555-0100",
			Name:  "Test Guest",
		}).
		Return(&identity.ResolveGuestOutput{
			Identity: guestIdentity,
			Created:  true,
		}, nil)

	s.expectGame()

	s.mockPlayerRepo.EXPECT().
		CountAccepted(s.ctx, gomock.Any()).
		Return(0, nil)

	s.mockUUID.EXPECT().NewUUID().Return("record-1")

	s.mockPlayerRepo.EXPECT().
		CreateRecord(s.ctx, gomock.Any()).
		Return(nil)

	// The join history mirror is written in the same unit
	s.mockGuestRepo.EXPECT().
		UpsertJoinHistory(s.ctx, &guestRepo.UpsertJoinHistoryInput{
			GuestID: "guest-1",
			GameID:  s.testGameID,
			Status:  models.PlayerStatusRequested,
		}).
		Return(nil)

	s.mockNotifier.EXPECT().Emit(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.RequestToJoin(s.ctx, &RequestToJoinInput{
		GameID: s.testGameID,
		Guest: &GuestContact{
			Phone: "555-0100",
			Name:  "Test Guest",
		},
	})
	s.Require().NoError(err)
	s.Equal(guestIdentity, out.Player.Identity)
}

func (s *AdmissionServiceTestSuite) TestRequestToJoinGuestDuplicate() {
	guestIdentity := models.GuestIdentity("guest-1")

	s.mockIdentitySvc.EXPECT().
		ResolveGuest(s.ctx, gomock.Any()).
		Return(&identity.ResolveGuestOutput{Identity: guestIdentity}, nil)

	s.expectGame()

	s.mockPlayerRepo.EXPECT().
		CountAccepted(s.ctx, gomock.Any()).
		Return(0, nil)

	s.mockUUID.EXPECT().NewUUID().Return("record-1")

	// Same guest, same game: the uniqueness gate trips
	s.mockPlayerRepo.EXPECT().
		CreateRecord(s.ctx, gomock.Any()).
		Return(playerRepo.ErrDuplicateRecord)

	_, err := s.service.RequestToJoin(s.ctx, &RequestToJoinInput{
		GameID: s.testGameID,
		Guest: &GuestContact{
			Phone: "555-0100",
			Name:  "Test Guest",
		},
	})
	s.ErrorIs(err, ErrDuplicateRecord)
}

func (s *AdmissionServiceTestSuite) TestRequestToJoinGuestHistoryFailureCompensates() {
	guestIdentity := models.GuestIdentity("guest-1")

	s.mockIdentitySvc.EXPECT().
		ResolveGuest(s.ctx, gomock.Any()).
		Return(&identity.ResolveGuestOutput{Identity: guestIdentity}, nil)

	s.expectGame()

	s.mockPlayerRepo.EXPECT().
		CountAccepted(s.ctx, gomock.Any()).
		Return(0, nil)

	s.mockUUID.EXPECT().NewUUID().Return("record-1")

	s.mockPlayerRepo.EXPECT().
		CreateRecord(s.ctx, gomock.Any()).
		Return(nil)

	s.mockGuestRepo.EXPECT().
		UpsertJoinHistory(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	// The record insert is rolled back when the history write fails
	s.mockPlayerRepo.EXPECT().
		DeleteRecord(s.ctx, &playerRepo.DeleteRecordInput{
			GameID:   s.testGameID,
			Identity: guestIdentity,
		}).
		Return(nil)

	_, err := s.service.RequestToJoin(s.ctx, &RequestToJoinInput{
		GameID: s.testGameID,
		Guest: &GuestContact{
			Phone: "555-0100",
			Name:  "Test Guest",
		},
	})
	s.Error(err)
}

func (s *AdmissionServiceTestSuite) TestAcceptInvitationSeats() {
	s.expectGame()

	invitee := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(invitee, models.PlayerStatusPending), nil)

	s.mockPlayerRepo.EXPECT().
		AcceptIfUnderCapacity(s.ctx, &playerRepo.AcceptIfUnderCapacityInput{
			GameID:   s.testGameID,
			Identity: invitee,
			Capacity: 2,
		}).
		Return(&playerRepo.AcceptIfUnderCapacityOutput{
			Status: models.PlayerStatusAccepted,
		}, nil)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventInviteAccepted,
			GameID:    s.testGameID,
			Recipient: s.hostIdentity,
			Actor:     invitee,
			Payload:   map[string]string{"status": "accepted"},
		}).
		Return(nil)

	out, err := s.service.AcceptInvitation(s.ctx, &AcceptInvitationInput{
		GameID:   s.testGameID,
		Identity: invitee,
	})
	s.Require().NoError(err)
	s.Equal(models.PlayerStatusAccepted, out.Status)
}

func (s *AdmissionServiceTestSuite) TestAcceptInvitationOverflowsToWaitlist() {
	s.expectGame()

	invitee := models.MemberIdentity("member-3")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(invitee, models.PlayerStatusPending), nil)

	// Invitations are non-reserving; a late accept falls to the waitlist
	s.mockPlayerRepo.EXPECT().
		AcceptIfUnderCapacity(s.ctx, gomock.Any()).
		Return(&playerRepo.AcceptIfUnderCapacityOutput{
			Status: models.PlayerStatusWaitlist,
		}, nil)

	s.mockNotifier.EXPECT().Emit(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.AcceptInvitation(s.ctx, &AcceptInvitationInput{
		GameID:   s.testGameID,
		Identity: invitee,
	})
	s.Require().NoError(err)
	s.Equal(models.PlayerStatusWaitlist, out.Status)
}

func (s *AdmissionServiceTestSuite) TestAcceptInvitationWrongStatus() {
	s.expectGame()

	invitee := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(invitee, models.PlayerStatusRequested), nil)

	_, err := s.service.AcceptInvitation(s.ctx, &AcceptInvitationInput{
		GameID:   s.testGameID,
		Identity: invitee,
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *AdmissionServiceTestSuite) TestAcceptInvitationRecordMissing() {
	s.expectGame()

	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(nil, playerRepo.ErrRecordNotFound)

	_, err := s.service.AcceptInvitation(s.ctx, &AcceptInvitationInput{
		GameID:   s.testGameID,
		Identity: models.MemberIdentity("member-1"),
	})
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *AdmissionServiceTestSuite) TestAcceptJoinRequest() {
	s.expectGame()

	requester := models.GuestIdentity("guest-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(requester, models.PlayerStatusWaitlistRequested), nil)

	s.mockPlayerRepo.EXPECT().
		AcceptIfUnderCapacity(s.ctx, gomock.Any()).
		Return(&playerRepo.AcceptIfUnderCapacityOutput{
			Status: models.PlayerStatusAccepted,
		}, nil)

	// Guests get their join history mirrored on transition
	s.mockGuestRepo.EXPECT().
		UpsertJoinHistory(s.ctx, &guestRepo.UpsertJoinHistoryInput{
			GuestID: "guest-1",
			GameID:  s.testGameID,
			Status:  models.PlayerStatusAccepted,
		}).
		Return(nil)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventRequestAccepted,
			GameID:    s.testGameID,
			Recipient: requester,
			Actor:     s.hostIdentity,
			Payload:   map[string]string{"status": "accepted"},
		}).
		Return(nil)

	out, err := s.service.AcceptJoinRequest(s.ctx, &AcceptJoinRequestInput{
		GameID:   s.testGameID,
		HostID:   s.testHostID,
		Identity: requester,
	})
	s.Require().NoError(err)
	s.Equal(models.PlayerStatusAccepted, out.Status)
}

func (s *AdmissionServiceTestSuite) TestAcceptJoinRequestNotHost() {
	s.expectGame()

	_, err := s.service.AcceptJoinRequest(s.ctx, &AcceptJoinRequestInput{
		GameID:   s.testGameID,
		HostID:   "member-1",
		Identity: models.GuestIdentity("guest-1"),
	})
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *AdmissionServiceTestSuite) TestDeclineInvitation() {
	s.expectGame()

	invitee := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(invitee, models.PlayerStatusPending), nil)

	s.mockPlayerRepo.EXPECT().
		DeleteRecord(s.ctx, &playerRepo.DeleteRecordInput{
			GameID:   s.testGameID,
			Identity: invitee,
		}).
		Return(nil)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventInviteDeclined,
			GameID:    s.testGameID,
			Recipient: s.hostIdentity,
			Actor:     invitee,
		}).
		Return(nil)

	_, err := s.service.DeclineInvitation(s.ctx, &DeclineInvitationInput{
		GameID:   s.testGameID,
		Identity: invitee,
	})
	s.Require().NoError(err)
}

func (s *AdmissionServiceTestSuite) TestDeclineInvitationSeatedPlayer() {
	s.expectGame()

	seated := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(seated, models.PlayerStatusAccepted), nil)

	// No delete and no promotion: a seated player must go through
	// RemoveParticipant so the vacancy is refilled from the waitlist
	_, err := s.service.DeclineInvitation(s.ctx, &DeclineInvitationInput{
		GameID:   s.testGameID,
		Identity: seated,
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *AdmissionServiceTestSuite) TestDeclineInvitationRejectedRecord() {
	s.expectGame()

	requester := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(requester, models.PlayerStatusRejected), nil)

	_, err := s.service.DeclineInvitation(s.ctx, &DeclineInvitationInput{
		GameID:   s.testGameID,
		Identity: requester,
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *AdmissionServiceTestSuite) TestRejectJoinRequest() {
	s.expectGame()

	requester := models.GuestIdentity("guest-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(requester, models.PlayerStatusRequested), nil)

	s.mockPlayerRepo.EXPECT().
		UpdateRecord(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.UpdateRecordInput) error {
			s.Equal(models.PlayerStatusRejected, input.Player.Status)
			s.Equal("game is for regulars only", input.Player.RejectionReason)
			s.Equal(s.testTime, input.Player.UpdatedAt)
			return nil
		})

	s.mockGuestRepo.EXPECT().
		UpsertJoinHistory(s.ctx, &guestRepo.UpsertJoinHistoryInput{
			GuestID: "guest-1",
			GameID:  s.testGameID,
			Status:  models.PlayerStatusRejected,
		}).
		Return(nil)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventRequestRejected,
			GameID:    s.testGameID,
			Recipient: requester,
			Actor:     s.hostIdentity,
			Payload:   map[string]string{"reason": "game is for regulars only"},
		}).
		Return(nil)

	_, err := s.service.RejectJoinRequest(s.ctx, &RejectJoinRequestInput{
		GameID:   s.testGameID,
		HostID:   s.testHostID,
		Identity: requester,
		Reason:   "game is for regulars only",
	})
	s.Require().NoError(err)
}

func (s *AdmissionServiceTestSuite) TestRejectJoinRequestNotHost() {
	s.expectGame()

	// No record read, no write, no notification: nothing changes
	_, err := s.service.RejectJoinRequest(s.ctx, &RejectJoinRequestInput{
		GameID:   s.testGameID,
		HostID:   "member-1",
		Identity: models.GuestIdentity("guest-1"),
		Reason:   "nope",
	})
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *AdmissionServiceTestSuite) TestRejectJoinRequestWrongStatus() {
	s.expectGame()

	requester := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(requester, models.PlayerStatusAccepted), nil)

	_, err := s.service.RejectJoinRequest(s.ctx, &RejectJoinRequestInput{
		GameID:   s.testGameID,
		HostID:   s.testHostID,
		Identity: requester,
		Reason:   "too late",
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *AdmissionServiceTestSuite) TestRemoveParticipantLeaveTriggersPromotion() {
	s.expectGame()

	leaver := models.MemberIdentity("member-1")
	promoted := s.record(models.GuestIdentity("guest-1"), models.PlayerStatusAccepted)

	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(leaver, models.PlayerStatusAccepted), nil)

	s.mockPlayerRepo.EXPECT().
		DeleteRecord(s.ctx, &playerRepo.DeleteRecordInput{
			GameID:   s.testGameID,
			Identity: leaver,
		}).
		Return(nil)

	s.mockWaitlistSvc.EXPECT().
		PromoteNext(s.ctx, &waitlist.PromoteNextInput{
			GameID:   s.testGameID,
			Capacity: 2,
		}).
		Return(&waitlist.PromoteNextOutput{
			Promoted: true,
			Player:   promoted,
		}, nil)

	// The promoted guest's history is mirrored to accepted
	s.mockGuestRepo.EXPECT().
		UpsertJoinHistory(s.ctx, &guestRepo.UpsertJoinHistoryInput{
			GuestID: "guest-1",
			GameID:  s.testGameID,
			Status:  models.PlayerStatusAccepted,
		}).
		Return(nil)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventWaitlistPromoted,
			GameID:    s.testGameID,
			Recipient: promoted.Identity,
			Actor:     s.hostIdentity,
		}).
		Return(nil)

	// Leaving notifies the host, not the leaver
	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventParticipantLeft,
			GameID:    s.testGameID,
			Recipient: s.hostIdentity,
			Actor:     leaver,
		}).
		Return(nil)

	out, err := s.service.RemoveParticipant(s.ctx, &RemoveParticipantInput{
		GameID: s.testGameID,
		Actor:  leaver,
		Target: leaver,
	})
	s.Require().NoError(err)
	s.True(out.Promoted)
	s.Equal(models.GuestIdentity("guest-1"), out.PromotedIdentity)
}

func (s *AdmissionServiceTestSuite) TestRemoveParticipantByHostNoPromotion() {
	s.expectGame()

	target := models.MemberIdentity("member-1")

	// Removing a waitlisted player frees no seat, so nobody is promoted
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(target, models.PlayerStatusWaitlist), nil)

	s.mockPlayerRepo.EXPECT().
		DeleteRecord(s.ctx, gomock.Any()).
		Return(nil)

	// Host removal notifies the removed player
	s.mockNotifier.EXPECT().
		Emit(s.ctx, &notifier.EmitInput{
			Type:      notifier.EventParticipantRemoved,
			GameID:    s.testGameID,
			Recipient: target,
			Actor:     s.hostIdentity,
		}).
		Return(nil)

	out, err := s.service.RemoveParticipant(s.ctx, &RemoveParticipantInput{
		GameID: s.testGameID,
		Actor:  s.hostIdentity,
		Target: target,
	})
	s.Require().NoError(err)
	s.False(out.Promoted)
}

func (s *AdmissionServiceTestSuite) TestRemoveParticipantEmptyWaitlist() {
	s.expectGame()

	target := models.MemberIdentity("member-1")

	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(target, models.PlayerStatusAccepted), nil)

	s.mockPlayerRepo.EXPECT().
		DeleteRecord(s.ctx, gomock.Any()).
		Return(nil)

	s.mockWaitlistSvc.EXPECT().
		PromoteNext(s.ctx, gomock.Any()).
		Return(&waitlist.PromoteNextOutput{}, nil)

	s.mockNotifier.EXPECT().
		Emit(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.service.RemoveParticipant(s.ctx, &RemoveParticipantInput{
		GameID: s.testGameID,
		Actor:  s.hostIdentity,
		Target: target,
	})
	s.Require().NoError(err)
	s.False(out.Promoted)
}

func (s *AdmissionServiceTestSuite) TestRemoveParticipantUnauthorized() {
	s.expectGame()

	_, err := s.service.RemoveParticipant(s.ctx, &RemoveParticipantInput{
		GameID: s.testGameID,
		Actor:  models.MemberIdentity("member-2"),
		Target: models.MemberIdentity("member-1"),
	})
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *AdmissionServiceTestSuite) TestRemoveParticipantPendingRecord() {
	s.expectGame()

	target := models.MemberIdentity("member-1")
	s.mockPlayerRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(s.record(target, models.PlayerStatusPending), nil)

	// Pending invitations are cancelled, not removed
	_, err := s.service.RemoveParticipant(s.ctx, &RemoveParticipantInput{
		GameID: s.testGameID,
		Actor:  s.hostIdentity,
		Target: target,
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *AdmissionServiceTestSuite) TestGetWaitlistPosition() {
	queued := models.GuestIdentity("guest-1")

	s.mockWaitlistSvc.EXPECT().
		GetPosition(s.ctx, &waitlist.GetPositionInput{
			GameID:   s.testGameID,
			Identity: queued,
		}).
		Return(&waitlist.GetPositionOutput{Position: 1}, nil)

	out, err := s.service.GetWaitlistPosition(s.ctx, &GetWaitlistPositionInput{
		GameID:   s.testGameID,
		Identity: queued,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Position)
}

func (s *AdmissionServiceTestSuite) TestGetWaitlistPositionNotOnWaitlist() {
	s.mockWaitlistSvc.EXPECT().
		GetPosition(s.ctx, gomock.Any()).
		Return(nil, waitlist.ErrNotOnWaitlist)

	_, err := s.service.GetWaitlistPosition(s.ctx, &GetWaitlistPositionInput{
		GameID:   s.testGameID,
		Identity: models.MemberIdentity("member-1"),
	})
	s.ErrorIs(err, ErrNotOnWaitlist)
}

func (s *AdmissionServiceTestSuite) TestListParticipants() {
	later := s.testTime.Add(time.Minute)

	accepted := s.record(models.MemberIdentity("member-1"), models.PlayerStatusAccepted)
	waitlisted := s.record(models.GuestIdentity("guest-1"), models.PlayerStatusWaitlist)
	waitlisted.CreatedAt = later
	queued := s.record(models.MemberIdentity("member-2"), models.PlayerStatusWaitlistRequested)
	queued.CreatedAt = later.Add(time.Minute)
	rejected := s.record(models.GuestIdentity("guest-2"), models.PlayerStatusRejected)
	rejected.RejectionReason = "full table"
	rejected.CreatedAt = later.Add(2 * time.Minute)

	s.mockPlayerRepo.EXPECT().
		ListRecords(s.ctx, &playerRepo.ListRecordsInput{GameID: s.testGameID}).
		Return(&playerRepo.ListRecordsOutput{
			Players: []*models.Player{rejected, queued, waitlisted, accepted},
		}, nil)

	out, err := s.service.ListParticipants(s.ctx, &ListParticipantsInput{
		GameID: s.testGameID,
	})
	s.Require().NoError(err)
	s.Len(out.Accepted, 1)
	s.Len(out.Waitlisted, 1)
	s.Len(out.Requested, 1)
	s.Len(out.Rejected, 1)
	s.Empty(out.Pending)
	s.Equal("full table", out.Rejected[0].RejectionReason)
}

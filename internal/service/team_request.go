package service

import (
	"errors"
	"fmt"
	"time"

	"scrimhub-backend/internal/database/models"
	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/logger"
	"scrimhub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// RespondAction is the caller's decision on a pending request
type RespondAction string

const (
	ActionAccept RespondAction = "accept"
	ActionReject RespondAction = "reject"
)

// TeamRequestService drives the invite / join-request workflow. Every
// transition validates authorization and capacity before writing, then
// applies its state changes and notification fanout in one transaction.
type TeamRequestService struct {
	db               *gorm.DB
	teamRepo         *repository.TeamRepository
	userRepo         *repository.UserRepository
	profileRepo      *repository.GameProfileRepository
	requestRepo      *repository.TeamRequestRepository
	membershipRepo   *repository.MembershipRepository
	notificationRepo *repository.NotificationRepository
	capacity         *CapacityPolicy
	validator        *validator.Validate
}

// NewTeamRequestService creates a new team request service
func NewTeamRequestService(
	db *gorm.DB,
	teamRepo *repository.TeamRepository,
	userRepo *repository.UserRepository,
	profileRepo *repository.GameProfileRepository,
	requestRepo *repository.TeamRequestRepository,
	membershipRepo *repository.MembershipRepository,
	notificationRepo *repository.NotificationRepository,
	capacity *CapacityPolicy,
	validator *validator.Validate,
) *TeamRequestService {
	return &TeamRequestService{
		db:               db,
		teamRepo:         teamRepo,
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		requestRepo:      requestRepo,
		membershipRepo:   membershipRepo,
		notificationRepo: notificationRepo,
		capacity:         capacity,
		validator:        validator,
	}
}

// InviteRequest represents the request to invite a player to a team
type InviteRequest struct {
	TeamID       int64 `json:"team_id" validate:"required"`
	TargetUserID int64 `json:"target_user_id" validate:"required"`
}

// JoinRequest represents a player's request to join a recruiting team
type JoinRequest struct {
	TeamID int64 `json:"team_id" validate:"required"`
}

// RespondRequest represents the response to a pending team request
type RespondRequest struct {
	RequestID int64         `json:"request_id" validate:"required"`
	Action    RespondAction `json:"action" validate:"required,oneof=accept reject"`
}

// TeamRequestResponse represents the response for team request operations
type TeamRequestResponse struct {
	ID          int64                  `json:"id"`
	Kind        models.TeamRequestKind `json:"kind"`
	Status      models.RequestStatus   `json:"status"`
	TeamID      int64                  `json:"team_id"`
	UserID      int64                  `json:"user_id"`
	CreatedAt   string                 `json:"created_at"`
	RespondedAt *string                `json:"responded_at,omitempty"`
}

// Invite creates a pending invite for a player and notifies them. The
// inviter must be an owner or manager, the target must have a profile for
// the team's game, be looking for a team, and have capacity left.
func (s *TeamRequestService) Invite(viewerID int64, req *InviteRequest) (*TeamRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.TargetUserID == viewerID {
		return nil, apperrors.NewValidationError("target_user_id", "cannot invite yourself")
	}

	team, err := s.teamRepo.GetWithMemberships(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if !CanManage(viewerID, team.Memberships) {
		return nil, apperrors.ErrNotTeamManager
	}
	if team.MembershipOf(req.TargetUserID) != nil {
		return nil, apperrors.ErrAlreadyMember
	}

	profile, err := s.profileRepo.GetByUserAndGame(req.TargetUserID, team.GameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameProfileNotFound
		}
		return nil, fmt.Errorf("failed to load target profile: %w", err)
	}
	if !profile.LookingForTeam {
		return nil, apperrors.ErrNotLookingForTeam
	}

	if err := s.capacity.CheckTeamCapacity(req.TargetUserID); err != nil {
		return nil, err
	}

	exists, err := s.requestRepo.PendingExists(req.TeamID, req.TargetUserID, models.TeamRequestInvite)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invites: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateRequest
	}

	inviter, err := s.userRepo.GetByID(viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inviter: %w", err)
	}

	request := &models.TeamRequest{
		Kind:            models.TeamRequestInvite,
		Status:          models.RequestStatusPending,
		TeamID:          team.ID,
		UserID:          req.TargetUserID,
		CreatedByUserID: viewerID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requestRepo.WithTx(tx).Create(request); err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}
		notification := models.Notification{
			RecipientID:   req.TargetUserID,
			Type:          models.NotificationTeamInvite,
			Title:         "Team Invitation",
			Body:          fmt.Sprintf("%s has invited you to join %s.", inviter.Username, team.Name),
			TeamID:        &team.ID,
			TeamRequestID: &request.ID,
		}
		if err := s.notificationRepo.WithTx(tx).Create(&notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(request), nil
}

// RequestToJoin creates a pending join request against a recruiting team and
// notifies every owner and manager
func (s *TeamRequestService) RequestToJoin(viewerID int64, req *JoinRequest) (*TeamRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetWithMemberships(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if !team.IsRecruiting {
		return nil, apperrors.ErrNotRecruiting
	}
	if team.MembershipOf(viewerID) != nil {
		return nil, apperrors.ErrAlreadyMember
	}

	if err := s.capacity.CheckTeamCapacity(viewerID); err != nil {
		return nil, err
	}

	exists, err := s.requestRepo.PendingExists(req.TeamID, viewerID, models.TeamRequestJoin)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending join requests: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateRequest
	}

	requester, err := s.userRepo.GetByID(viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requester: %w", err)
	}

	request := &models.TeamRequest{
		Kind:            models.TeamRequestJoin,
		Status:          models.RequestStatusPending,
		TeamID:          team.ID,
		UserID:          viewerID,
		CreatedByUserID: viewerID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requestRepo.WithTx(tx).Create(request); err != nil {
			return fmt.Errorf("failed to create join request: %w", err)
		}

		managerIDs := team.ManagerIDs()
		notifications := make([]models.Notification, 0, len(managerIDs))
		for _, recipientID := range managerIDs {
			notifications = append(notifications, models.Notification{
				RecipientID:   recipientID,
				Type:          models.NotificationTeamJoinRequest,
				Title:         "New Join Request",
				Body:          fmt.Sprintf("%s requested to join %s.", requester.Username, team.Name),
				TeamID:        &team.ID,
				TeamRequestID: &request.ID,
			})
		}
		if err := s.notificationRepo.WithTx(tx).CreateBatch(notifications); err != nil {
			return fmt.Errorf("failed to create notifications: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(request), nil
}

// Respond resolves a pending team request. Only the invited user may answer
// an invite; only an owner or manager may answer a join request. The status
// flip is conditional on the request still being pending, so of two
// concurrent responders exactly one succeeds and the other gets
// ErrAlreadyResolved. On accept the subject's capacity is re-checked under a
// row lock inside the same transaction.
func (s *TeamRequestService) Respond(viewerID int64, req *RespondRequest) (*TeamRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.requestRepo.GetWithTeam(req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamRequestNotFound
		}
		return nil, fmt.Errorf("failed to load team request: %w", err)
	}

	switch request.Kind {
	case models.TeamRequestInvite:
		if request.UserID != viewerID {
			return nil, apperrors.ErrNotRequestAddressee
		}
	case models.TeamRequestJoin:
		if !CanManage(viewerID, request.Team.Memberships) {
			return nil, apperrors.ErrNotRequestAddressee
		}
	}

	if request.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyResolved
	}

	now := time.Now().UTC()
	status := models.RequestStatusRejected
	if req.Action == ActionAccept {
		status = models.RequestStatusAccepted
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		resolved, err := s.requestRepo.WithTx(tx).MarkResponded(request.ID, status, now)
		if err != nil {
			return fmt.Errorf("failed to update team request: %w", err)
		}
		if !resolved {
			return apperrors.ErrAlreadyResolved
		}

		if req.Action == ActionAccept {
			count, err := s.capacity.ReserveMembershipSlot(tx, request.UserID)
			if err != nil {
				return err
			}
			membership := &models.TeamMembership{
				TeamID: request.TeamID,
				UserID: request.UserID,
				Role:   models.TeamRoleMember,
			}
			if err := s.membershipRepo.WithTx(tx).Upsert(membership); err != nil {
				return fmt.Errorf("failed to create membership: %w", err)
			}
			if err := s.capacity.AutoOptOutIfAtCap(tx, request.UserID, count+1); err != nil {
				return err
			}
		}

		if err := s.notificationRepo.WithTx(tx).MarkReadByTeamRequest(request.ID, viewerID, now); err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"team_request_id": request.ID,
		"team_id":         request.TeamID,
		"user_id":         request.UserID,
		"status":          status,
	}).Info("team request resolved")

	request.Status = status
	request.RespondedAt = &now
	return s.toResponse(request), nil
}

// ListPendingByTeam returns a team's pending requests; viewer must be an
// owner or manager
func (s *TeamRequestService) ListPendingByTeam(viewerID, teamID int64) ([]TeamRequestResponse, error) {
	team, err := s.teamRepo.GetWithMemberships(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if !CanManage(viewerID, team.Memberships) {
		return nil, apperrors.ErrNotTeamManager
	}

	requests, err := s.requestRepo.ListPendingByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	responses := make([]TeamRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *s.toResponse(&requests[i])
	}
	return responses, nil
}

func (s *TeamRequestService) toResponse(request *models.TeamRequest) *TeamRequestResponse {
	resp := &TeamRequestResponse{
		ID:        request.ID,
		Kind:      request.Kind,
		Status:    request.Status,
		TeamID:    request.TeamID,
		UserID:    request.UserID,
		CreatedAt: request.CreatedAt.Format(time.RFC3339),
	}
	if request.RespondedAt != nil {
		respondedAt := request.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &respondedAt
	}
	return resp
}

package service

import (
	"encoding/json"
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

// ScrimRequestService drives the scrim application workflow. Accepting a
// request is the only path that matches a scrim, and the open->matched flip
// is conditional so a scrim never carries two accepted requests.
type ScrimRequestService struct {
	db               *gorm.DB
	repo             *repository.ScrimRequestRepository
	scrimRepo        *repository.ScrimRepository
	teamRepo         *repository.TeamRepository
	userRepo         *repository.UserRepository
	notificationRepo *repository.NotificationRepository
	validator        *validator.Validate
}

// NewScrimRequestService creates a new scrim request service
func NewScrimRequestService(
	db *gorm.DB,
	repo *repository.ScrimRequestRepository,
	scrimRepo *repository.ScrimRepository,
	teamRepo *repository.TeamRepository,
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
	validator *validator.Validate,
) *ScrimRequestService {
	return &ScrimRequestService{
		db:               db,
		repo:             repo,
		scrimRepo:        scrimRepo,
		teamRepo:         teamRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		validator:        validator,
	}
}

// CreateScrimRequestInput represents a team's application to a scrim
type CreateScrimRequestInput struct {
	ScrimID        int64   `json:"scrim_id" validate:"required"`
	TeamID         int64   `json:"team_id" validate:"required"`
	ParticipantIDs []int64 `json:"participant_ids" validate:"required,min=1"`
}

// RespondScrimRequestInput represents the host's decision on an application
type RespondScrimRequestInput struct {
	RequestID int64         `json:"request_id" validate:"required"`
	Action    RespondAction `json:"action" validate:"required,oneof=accept reject"`
}

// ScrimRequestResponse represents the response for scrim request operations
type ScrimRequestResponse struct {
	ID             int64                `json:"id"`
	ScrimID        int64                `json:"scrim_id"`
	TeamID         int64                `json:"team_id"`
	TeamName       string               `json:"team_name,omitempty"`
	Status         models.RequestStatus `json:"status"`
	ParticipantIDs []int64              `json:"participant_ids"`
	CodeSent       bool                 `json:"code_sent"`
	CreatedAt      string               `json:"created_at"`
	RespondedAt    *string              `json:"responded_at,omitempty"`
}

// Create applies to an open scrim on behalf of a team. The caller must be an
// owner or manager of the applying team, which cannot be the host. Every
// listed participant must be on the applying team's roster; the participant
// list is snapshotted on the request.
func (s *ScrimRequestService) Create(viewerID int64, req *CreateScrimRequestInput) (*ScrimRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	scrim, err := s.scrimRepo.GetWithHostTeam(req.ScrimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScrimNotFound
		}
		return nil, fmt.Errorf("failed to load scrim: %w", err)
	}
	if scrim.Status != models.ScrimStatusOpen {
		return nil, apperrors.ErrScrimNotOpen
	}
	if scrim.HostTeamID == req.TeamID {
		return nil, apperrors.ErrOwnScrim
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

	roster := team.MemberIDSet()
	for _, id := range req.ParticipantIDs {
		if _, ok := roster[id]; !ok {
			return nil, apperrors.ErrInvalidSelection
		}
	}

	exists, err := s.repo.PendingExists(req.ScrimID, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending scrim requests: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateRequest
	}

	request := &models.ScrimRequest{
		ScrimID:           scrim.ID,
		TeamID:            team.ID,
		RequestedByUserID: viewerID,
		Status:            models.RequestStatusPending,
		ParticipantIDs:    models.Int64List(req.ParticipantIDs),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(request); err != nil {
			return fmt.Errorf("failed to create scrim request: %w", err)
		}

		metadata, _ := json.Marshal(map[string]any{
			"gamemode": scrim.Gamemode,
			"map":      scrim.Map,
			"best_of":  scrim.BestOf,
		})
		notification := models.Notification{
			RecipientID:    scrim.CreatedByUserID,
			Type:           models.NotificationScrimRequestReceived,
			Title:          "Scrim Request",
			Body:           fmt.Sprintf("%s wants to scrim against your team.", team.Name),
			ScrimID:        &scrim.ID,
			ScrimRequestID: &request.ID,
			Metadata:       metadata,
		}
		if err := s.notificationRepo.WithTx(tx).Create(&notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	request.Team = team
	return s.toResponse(request), nil
}

// Respond resolves a pending scrim request; host owner or manager only.
// Accepting flips the scrim open->matched; if another request of the same
// scrim was accepted first the flip fails and the whole transaction rolls
// back, leaving this request pending. The scrim code, when already set, is
// shared with the accepted team and the request records that it went out.
func (s *ScrimRequestService) Respond(viewerID int64, req *RespondScrimRequestInput) (*ScrimRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.repo.GetWithScrim(req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScrimRequestNotFound
		}
		return nil, fmt.Errorf("failed to load scrim request: %w", err)
	}

	scrim := request.Scrim
	if scrim == nil || scrim.HostTeam == nil {
		return nil, apperrors.ErrScrimNotFound
	}
	if !CanManage(viewerID, scrim.HostTeam.Memberships) {
		return nil, apperrors.ErrNotTeamManager
	}

	if request.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyResolved
	}

	now := time.Now().UTC()
	status := models.RequestStatusRejected
	if req.Action == ActionAccept {
		status = models.RequestStatusAccepted
	}
	codeSent := req.Action == ActionAccept && scrim.ScrimCode != nil

	err = s.db.Transaction(func(tx *gorm.DB) error {
		resolved, err := s.repo.WithTx(tx).MarkResponded(request.ID, status, codeSent, now)
		if err != nil {
			return fmt.Errorf("failed to update scrim request: %w", err)
		}
		if !resolved {
			return apperrors.ErrAlreadyResolved
		}

		if req.Action == ActionAccept {
			matched, err := s.scrimRepo.WithTx(tx).TransitionStatus(scrim.ID, models.ScrimStatusOpen, models.ScrimStatusMatched)
			if err != nil {
				return fmt.Errorf("failed to match scrim: %w", err)
			}
			if !matched {
				return apperrors.ErrScrimNotOpen
			}
		}

		if err := s.notificationRepo.WithTx(tx).MarkReadByScrimRequest(request.ID, viewerID, now); err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}

		notificationType := models.NotificationScrimRequestRejected
		title := "Scrim Request Rejected"
		body := fmt.Sprintf("Your scrim request against %s was rejected.", scrim.HostTeam.Name)
		if req.Action == ActionAccept {
			notificationType = models.NotificationScrimRequestAccepted
			title = "Scrim Request Accepted"
			body = fmt.Sprintf("Your scrim request against %s was accepted.", scrim.HostTeam.Name)
			if codeSent {
				body = fmt.Sprintf("%s The scrim code is %s.", body, *scrim.ScrimCode)
			}
		}
		notification := models.Notification{
			RecipientID:    request.RequestedByUserID,
			Type:           notificationType,
			Title:          title,
			Body:           body,
			ScrimID:        &scrim.ID,
			ScrimRequestID: &request.ID,
		}
		if err := s.notificationRepo.WithTx(tx).Create(&notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"scrim_request_id": request.ID,
		"scrim_id":         scrim.ID,
		"team_id":          request.TeamID,
		"status":           status,
		"code_sent":        codeSent,
	}).Info("scrim request resolved")

	request.Status = status
	request.CodeSent = codeSent
	request.RespondedAt = &now
	return s.toResponse(request), nil
}

// ListPendingByScrim returns a scrim's pending requests; host owner or
// manager only
func (s *ScrimRequestService) ListPendingByScrim(viewerID, scrimID int64) ([]ScrimRequestResponse, error) {
	scrim, err := s.scrimRepo.GetWithHostTeam(scrimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScrimNotFound
		}
		return nil, fmt.Errorf("failed to load scrim: %w", err)
	}
	if !CanManage(viewerID, scrim.HostTeam.Memberships) {
		return nil, apperrors.ErrNotTeamManager
	}

	requests, err := s.repo.ListPendingByScrim(scrimID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending scrim requests: %w", err)
	}

	responses := make([]ScrimRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *s.toResponse(&requests[i])
	}
	return responses, nil
}

func (s *ScrimRequestService) toResponse(request *models.ScrimRequest) *ScrimRequestResponse {
	resp := &ScrimRequestResponse{
		ID:             request.ID,
		ScrimID:        request.ScrimID,
		TeamID:         request.TeamID,
		Status:         request.Status,
		ParticipantIDs: request.ParticipantIDs,
		CodeSent:       request.CodeSent,
		CreatedAt:      request.CreatedAt.Format(time.RFC3339),
	}
	if request.Team != nil {
		resp.TeamName = request.Team.Name
	}
	if request.RespondedAt != nil {
		respondedAt := request.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &respondedAt
	}
	return resp
}

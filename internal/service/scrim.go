package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"scrimhub-backend/internal/database/models"
	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ScrimService manages scrim listings: creation, the shared scrim code,
// matched-team departure and disbanding
type ScrimService struct {
	db          *gorm.DB
	repo        *repository.ScrimRepository
	requestRepo *repository.ScrimRequestRepository
	teamRepo    *repository.TeamRepository
	validator   *validator.Validate
}

// NewScrimService creates a new scrim service
func NewScrimService(
	db *gorm.DB,
	repo *repository.ScrimRepository,
	requestRepo *repository.ScrimRequestRepository,
	teamRepo *repository.TeamRepository,
	validator *validator.Validate,
) *ScrimService {
	return &ScrimService{
		db:          db,
		repo:        repo,
		requestRepo: requestRepo,
		teamRepo:    teamRepo,
		validator:   validator,
	}
}

// CreateScrimRequest represents the request to post a scrim listing
type CreateScrimRequest struct {
	HostTeamID     int64   `json:"host_team_id" validate:"required"`
	BestOf         int     `json:"best_of" validate:"required,min=1,max=9"`
	Gamemode       string  `json:"gamemode" validate:"required,max=64"`
	Map            string  `json:"map" validate:"required,max=64"`
	TeamSize       int     `json:"team_size" validate:"omitempty,min=1,max=10"`
	Ruleset        string  `json:"ruleset"`
	ScheduledAt    *string `json:"scheduled_at,omitempty"` // RFC 3339, omit for TBD
	ParticipantIDs []int64 `json:"participant_ids"`
}

// UpdateScrimCodeRequest represents the request to set a scrim's lobby code
type UpdateScrimCodeRequest struct {
	ScrimCode string `json:"scrim_code" validate:"required,min=4,max=16"`
}

// ScrimResponse represents the response for scrim operations
type ScrimResponse struct {
	ID                 int64              `json:"id"`
	HostTeamID         int64              `json:"host_team_id"`
	HostTeamName       string             `json:"host_team_name,omitempty"`
	BestOf             int                `json:"best_of"`
	Gamemode           string             `json:"gamemode"`
	Map                string             `json:"map"`
	TeamSize           int                `json:"team_size"`
	Ruleset            models.Ruleset     `json:"ruleset"`
	ScrimCode          *string            `json:"scrim_code,omitempty"`
	ScheduledAt        *string            `json:"scheduled_at,omitempty"`
	Status             models.ScrimStatus `json:"status"`
	HostParticipantIDs []int64            `json:"host_participant_ids"`
	CreatedAt          string             `json:"created_at"`
}

// Create posts a scrim listing on behalf of the host team. The creator must
// be an owner or manager of the host team; requested participants outside
// the host roster are silently dropped.
func (s *ScrimService) Create(viewerID int64, req *CreateScrimRequest) (*ScrimResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetWithMemberships(req.HostTeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load host team: %w", err)
	}
	if !CanManage(viewerID, team.Memberships) {
		return nil, apperrors.ErrNotTeamManager
	}

	var scheduledAt *time.Time
	if req.ScheduledAt != nil && *req.ScheduledAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			return nil, apperrors.NewValidationError("scheduled_at", "must be an RFC 3339 timestamp")
		}
		scheduledAt = &parsed
	}

	teamSize := req.TeamSize
	if teamSize == 0 {
		teamSize = 4
	}

	scrim := &models.Scrim{
		HostTeamID:         team.ID,
		BestOf:             req.BestOf,
		Gamemode:           strings.TrimSpace(req.Gamemode),
		Map:                strings.TrimSpace(req.Map),
		TeamSize:           teamSize,
		Ruleset:            models.NormalizeRuleset(req.Ruleset),
		ScheduledAt:        scheduledAt,
		Status:             models.ScrimStatusOpen,
		CreatedByUserID:    viewerID,
		HostParticipantIDs: restrictToRoster(req.ParticipantIDs, team.MemberIDSet()),
	}

	if err := s.repo.Create(scrim); err != nil {
		return nil, fmt.Errorf("failed to create scrim: %w", err)
	}

	scrim.HostTeam = team
	return s.toResponse(scrim), nil
}

// GetByID retrieves a scrim with its host team
func (s *ScrimService) GetByID(id int64) (*ScrimResponse, error) {
	scrim, err := s.repo.GetWithHostTeam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScrimNotFound
		}
		return nil, fmt.Errorf("failed to get scrim: %w", err)
	}
	return s.toResponse(scrim), nil
}

// UpdateCode sets the lobby code on a scrim; host owner or manager only.
// Codes are normalized to uppercase and must be globally unique.
func (s *ScrimService) UpdateCode(viewerID, scrimID int64, req *UpdateScrimCodeRequest) (*ScrimResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	scrim, err := s.repo.GetWithHostTeam(scrimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScrimNotFound
		}
		return nil, fmt.Errorf("failed to load scrim: %w", err)
	}
	if !CanManage(viewerID, scrim.HostTeam.Memberships) {
		return nil, apperrors.ErrNotTeamManager
	}

	code := strings.ToUpper(strings.TrimSpace(req.ScrimCode))
	if err := s.repo.UpdateCode(scrim.ID, code); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrScrimCodeTaken
		}
		return nil, fmt.Errorf("failed to update scrim code: %w", err)
	}

	scrim.ScrimCode = &code
	return s.toResponse(scrim), nil
}

// Disband deletes a scrim and all of its requests atomically; host owner or
// manager only
func (s *ScrimService) Disband(viewerID, scrimID int64) error {
	scrim, err := s.repo.GetWithHostTeam(scrimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScrimNotFound
		}
		return fmt.Errorf("failed to load scrim: %w", err)
	}
	if !CanManage(viewerID, scrim.HostTeam.Memberships) {
		return apperrors.ErrNotTeamManager
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requestRepo.WithTx(tx).DeleteByScrim(scrim.ID); err != nil {
			return fmt.Errorf("failed to delete scrim requests: %w", err)
		}
		if err := s.repo.WithTx(tx).Delete(scrim.ID); err != nil {
			return fmt.Errorf("failed to delete scrim: %w", err)
		}
		return nil
	})
}

// Leave backs the matched opposing team out of a scrim. The caller must be
// an owner or manager of that team. The accepted request is cancelled and
// the scrim reopens in one transaction. The host cannot leave its own
// listing; the host disbands instead.
func (s *ScrimService) Leave(viewerID, scrimID int64) error {
	scrim, err := s.repo.GetWithAcceptedRequests(scrimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScrimNotFound
		}
		return fmt.Errorf("failed to load scrim: %w", err)
	}
	if scrim.Status != models.ScrimStatusMatched || len(scrim.Requests) == 0 {
		return apperrors.NewInvalidStateError("scrim is not matched")
	}

	accepted := &scrim.Requests[0]
	if accepted.Team != nil && accepted.Team.MembershipOf(viewerID) != nil {
		if !CanManage(viewerID, accepted.Team.Memberships) {
			return apperrors.ErrNotTeamManager
		}
	} else {
		// Host-side managers land here; everyone else is simply unauthorized
		if scrim.HostTeam != nil && scrim.HostTeam.MembershipOf(viewerID) != nil {
			return apperrors.ErrHostCannotLeave
		}
		return apperrors.ErrNotTeamMember
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		cancelled, err := s.requestRepo.WithTx(tx).Cancel(accepted.ID)
		if err != nil {
			return fmt.Errorf("failed to cancel scrim request: %w", err)
		}
		if !cancelled {
			return apperrors.ErrAlreadyResolved
		}
		reopened, err := s.repo.WithTx(tx).TransitionStatus(scrim.ID, models.ScrimStatusMatched, models.ScrimStatusOpen)
		if err != nil {
			return fmt.Errorf("failed to reopen scrim: %w", err)
		}
		if !reopened {
			return apperrors.NewInvalidStateError("scrim is no longer matched")
		}
		return nil
	})
}

// ListOpen returns open scrims for browsing, optionally filtered by game
func (s *ScrimService) ListOpen(gameID *int64) ([]ScrimResponse, error) {
	scrims, err := s.repo.ListOpen(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open scrims: %w", err)
	}
	responses := make([]ScrimResponse, len(scrims))
	for i := range scrims {
		responses[i] = *s.toResponse(&scrims[i])
	}
	return responses, nil
}

func (s *ScrimService) toResponse(scrim *models.Scrim) *ScrimResponse {
	resp := &ScrimResponse{
		ID:                 scrim.ID,
		HostTeamID:         scrim.HostTeamID,
		BestOf:             scrim.BestOf,
		Gamemode:           scrim.Gamemode,
		Map:                scrim.Map,
		TeamSize:           scrim.TeamSize,
		Ruleset:            scrim.Ruleset,
		ScrimCode:          scrim.ScrimCode,
		Status:             scrim.Status,
		HostParticipantIDs: scrim.HostParticipantIDs,
		CreatedAt:          scrim.CreatedAt.Format(time.RFC3339),
	}
	if scrim.ScheduledAt != nil {
		scheduledAt := scrim.ScheduledAt.Format(time.RFC3339)
		resp.ScheduledAt = &scheduledAt
	}
	if scrim.HostTeam != nil {
		resp.HostTeamName = scrim.HostTeam.Name
	}
	return resp
}

// restrictToRoster keeps only ids that are current members, deduplicated,
// preserving request order
func restrictToRoster(ids []int64, roster map[int64]struct{}) models.Int64List {
	kept := make(models.Int64List, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := roster[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, id)
	}
	return kept
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

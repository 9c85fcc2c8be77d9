package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"scrimhub-backend/internal/database/models"
	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a team name
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// TeamService handles team lifecycle and roster management
type TeamService struct {
	db             *gorm.DB
	repo           *repository.TeamRepository
	membershipRepo *repository.MembershipRepository
	profileRepo    *repository.GameProfileRepository
	capacity       *CapacityPolicy
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	db *gorm.DB,
	repo *repository.TeamRepository,
	membershipRepo *repository.MembershipRepository,
	profileRepo *repository.GameProfileRepository,
	capacity *CapacityPolicy,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		db:             db,
		repo:           repo,
		membershipRepo: membershipRepo,
		profileRepo:    profileRepo,
		capacity:       capacity,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name         string `json:"name" validate:"required,min=3,max=24"`
	Region       string `json:"region" validate:"required,oneof=NA EU SA AS OC"`
	IsRecruiting bool   `json:"is_recruiting"`
	Bio          string `json:"bio" validate:"max=500"`
	LogoURL      string `json:"logo_url" validate:"omitempty,url,max=200"`
	RankID       *int64 `json:"rank_id,omitempty"`
}

// UpdateTeamRequest represents the request to update a team's profile
type UpdateTeamRequest struct {
	Name         string `json:"name" validate:"required,min=3,max=24"`
	Region       string `json:"region" validate:"required,oneof=NA EU SA AS OC"`
	IsRecruiting *bool  `json:"is_recruiting,omitempty"`
	Bio          string `json:"bio" validate:"max=500"`
	RankID       *int64 `json:"rank_id,omitempty"`
}

// ChangeRoleRequest represents the request to change a member's role.
// Owner is deliberately absent from the allowed values; no path promotes
// to owner.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// MembershipResponse represents one roster entry
type MembershipResponse struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"user_id"`
	Username string          `json:"username,omitempty"`
	Role     models.TeamRole `json:"role"`
	JoinedAt string          `json:"joined_at"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Slug         string               `json:"slug"`
	Region       models.Region        `json:"region"`
	GameID       int64                `json:"game_id"`
	IsRecruiting bool                 `json:"is_recruiting"`
	Bio          string               `json:"bio,omitempty"`
	LogoURL      string               `json:"logo_url,omitempty"`
	RankID       *int64               `json:"rank_id,omitempty"`
	Memberships  []MembershipResponse `json:"memberships,omitempty"`
	CreatedAt    string               `json:"created_at"`
}

// Create creates a team; the creator becomes its owner. The creator must
// have a game profile, which decides the team's game.
func (s *TeamService) Create(viewerID int64, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.capacity.CheckTeamCapacity(viewerID); err != nil {
		return nil, err
	}

	taken, err := s.repo.NameExists(req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrTeamNameTaken
	}

	// The creator's first game profile decides which game the team plays
	profile, err := s.firstProfileOf(viewerID)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:         strings.TrimSpace(req.Name),
		Slug:         Slugify(req.Name),
		Region:       models.Region(req.Region),
		GameID:       profile.GameID,
		IsRecruiting: req.IsRecruiting,
		Bio:          req.Bio,
		LogoURL:      req.LogoURL,
		RankID:       req.RankID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		count, err := s.capacity.ReserveMembershipSlot(tx, viewerID)
		if err != nil {
			return err
		}
		membership := &models.TeamMembership{
			TeamID: team.ID,
			UserID: viewerID,
			Role:   models.TeamRoleOwner,
		}
		if err := s.membershipRepo.WithTx(tx).Create(membership); err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}
		return s.capacity.AutoOptOutIfAtCap(tx, viewerID, count+1)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(team.ID)
}

// GetByID retrieves a team with its roster
func (s *TeamService) GetByID(id int64) (*TeamResponse, error) {
	team, err := s.repo.GetWithMemberships(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team), nil
}

// GetBySlug retrieves a team by slug with its roster
func (s *TeamService) GetBySlug(slug string) (*TeamResponse, error) {
	team, err := s.repo.GetBySlugWithMemberships(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team), nil
}

// Update edits a team's profile; owner only. Renames are checked against
// other teams case-insensitively.
func (s *TeamService) Update(viewerID int64, slug string, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetBySlugWithMemberships(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if !IsOwner(viewerID, team.Memberships) {
		return nil, apperrors.ErrNotTeamOwner
	}

	if !strings.EqualFold(strings.TrimSpace(req.Name), team.Name) {
		taken, err := s.repo.NameExists(req.Name, team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check team name: %w", err)
		}
		if taken {
			return nil, apperrors.ErrTeamNameTaken
		}
	}

	team.Name = strings.TrimSpace(req.Name)
	team.Region = models.Region(req.Region)
	team.Bio = req.Bio
	team.RankID = req.RankID
	if req.IsRecruiting != nil {
		team.IsRecruiting = *req.IsRecruiting
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.toResponse(team), nil
}

// SetRecruiting toggles the recruiting flag; owner or manager
func (s *TeamService) SetRecruiting(viewerID int64, slug string, isRecruiting bool) error {
	team, err := s.repo.GetBySlugWithMemberships(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}
	if !CanManage(viewerID, team.Memberships) {
		return apperrors.ErrNotTeamManager
	}
	return s.repo.SetRecruiting(team.ID, isRecruiting)
}

// Leave removes the viewer's own membership. Owners cannot leave; they can
// only disband.
func (s *TeamService) Leave(viewerID int64, slug string) error {
	team, err := s.repo.GetBySlugWithMemberships(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}

	membership := team.MembershipOf(viewerID)
	if membership == nil {
		return apperrors.ErrNotTeamMember
	}
	if membership.Role == models.TeamRoleOwner {
		return apperrors.ErrOwnerCannotLeave
	}

	return s.membershipRepo.Delete(membership.ID)
}

// Kick removes another member from the roster. Owner or manager; a manager
// may not remove the owner; nobody kicks themselves.
func (s *TeamService) Kick(viewerID int64, slug string, membershipID int64) error {
	team, err := s.repo.GetBySlugWithMemberships(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}

	viewer := team.MembershipOf(viewerID)
	if viewer == nil {
		return apperrors.ErrNotTeamMember
	}
	if !viewer.Role.CanManageTeam() {
		return apperrors.ErrNotTeamManager
	}

	var target *models.TeamMembership
	for i := range team.Memberships {
		if team.Memberships[i].ID == membershipID {
			target = &team.Memberships[i]
			break
		}
	}
	if target == nil {
		return apperrors.ErrMembershipNotFound
	}

	if !CanManageMember(viewer.Role, target.Role) {
		return apperrors.ErrManagerCannotTouchOwner
	}
	if target.UserID == viewerID {
		return apperrors.ErrCannotKickSelf
	}

	return s.membershipRepo.Delete(target.ID)
}

// ChangeRole sets a member's role to manager or member. Owner is never
// assignable through this path; a manager may not modify the owner.
func (s *TeamService) ChangeRole(viewerID int64, slug string, membershipID int64, req *ChangeRoleRequest) (models.TeamRole, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	role, ok := models.ParseTeamRole(req.Role)
	if !ok || role == models.TeamRoleOwner {
		return "", apperrors.NewValidationError("role", "role must be 'manager' or 'member'")
	}

	team, err := s.repo.GetBySlugWithMemberships(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTeamNotFound
		}
		return "", fmt.Errorf("failed to load team: %w", err)
	}

	viewer := team.MembershipOf(viewerID)
	if viewer == nil {
		return "", apperrors.ErrNotTeamMember
	}
	if !viewer.Role.CanManageTeam() {
		return "", apperrors.ErrNotTeamManager
	}

	var target *models.TeamMembership
	for i := range team.Memberships {
		if team.Memberships[i].ID == membershipID {
			target = &team.Memberships[i]
			break
		}
	}
	if target == nil {
		return "", apperrors.ErrMembershipNotFound
	}

	if !CanManageMember(viewer.Role, target.Role) {
		return "", apperrors.ErrManagerCannotTouchOwner
	}

	if err := s.membershipRepo.UpdateRole(target.ID, role); err != nil {
		return "", fmt.Errorf("failed to update role: %w", err)
	}
	return role, nil
}

// Disband deletes a team and its memberships atomically; owner only
func (s *TeamService) Disband(viewerID int64, slug string) error {
	team, err := s.repo.GetBySlugWithMemberships(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}

	if !IsOwner(viewerID, team.Memberships) {
		return apperrors.ErrNotTeamOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.membershipRepo.WithTx(tx).DeleteByTeam(team.ID); err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}
		if err := s.repo.WithTx(tx).Delete(team.ID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
}

// ListRecruiting returns recruiting teams for LFP browsing
func (s *TeamService) ListRecruiting(gameID, rankID *int64) ([]TeamResponse, error) {
	teams, err := s.repo.ListRecruiting(gameID, rankID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruiting teams: %w", err)
	}
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

func (s *TeamService) firstProfileOf(userID int64) (*models.UserGameProfile, error) {
	profile, err := s.profileRepo.GetFirstByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameProfileNotFound
		}
		return nil, fmt.Errorf("failed to load game profile: %w", err)
	}
	return profile, nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		Slug:         team.Slug,
		Region:       team.Region,
		GameID:       team.GameID,
		IsRecruiting: team.IsRecruiting,
		Bio:          team.Bio,
		LogoURL:      team.LogoURL,
		RankID:       team.RankID,
		CreatedAt:    team.CreatedAt.Format(time.RFC3339),
	}
	for _, m := range team.Memberships {
		entry := MembershipResponse{
			ID:       m.ID,
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt.Format(time.RFC3339),
		}
		if m.User != nil {
			entry.Username = m.User.Username
		}
		resp.Memberships = append(resp.Memberships, entry)
	}
	return resp
}

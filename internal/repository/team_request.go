package repository

import (
	"time"

	"scrimhub-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRequestRepository handles database operations for team requests
type TeamRequestRepository struct {
	db *gorm.DB
}

// NewTeamRequestRepository creates a new team request repository
func NewTeamRequestRepository(db *gorm.DB) *TeamRequestRepository {
	return &TeamRequestRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *TeamRequestRepository) WithTx(tx *gorm.DB) *TeamRequestRepository {
	return &TeamRequestRepository{db: tx}
}

// Create creates a new team request
func (r *TeamRequestRepository) Create(request *models.TeamRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a team request by ID
func (r *TeamRequestRepository) GetByID(id int64) (*models.TeamRequest, error) {
	var request models.TeamRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetWithTeam retrieves a team request with its team, the team's roster, and
// the involved users
func (r *TeamRequestRepository) GetWithTeam(id int64) (*models.TeamRequest, error) {
	var request models.TeamRequest
	err := r.db.
		Preload("Team").
		Preload("Team.Memberships").
		Preload("User").
		Preload("CreatedBy").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// PendingExists reports whether a pending request already exists for the
// (team, user, kind) natural key
func (r *TeamRequestRepository) PendingExists(teamID, userID int64, kind models.TeamRequestKind) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamRequest{}).
		Where("team_id = ? AND user_id = ? AND kind = ? AND status = ?",
			teamID, userID, kind, models.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

// MarkResponded flips a pending request to the given terminal status. The
// update is conditional on status still being pending; of two concurrent
// responders exactly one sees resolved=true.
func (r *TeamRequestRepository) MarkResponded(id int64, status models.RequestStatus, at time.Time) (bool, error) {
	result := r.db.Model(&models.TeamRequest{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ListPendingByTeam retrieves the pending requests of a team, oldest first
func (r *TeamRequestRepository) ListPendingByTeam(teamID int64) ([]models.TeamRequest, error) {
	var requests []models.TeamRequest
	err := r.db.
		Preload("User").
		Preload("CreatedBy").
		Where("team_id = ? AND status = ?", teamID, models.RequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

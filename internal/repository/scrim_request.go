package repository

import (
	"time"

	"scrimhub-backend/internal/database/models"

	"gorm.io/gorm"
)

// ScrimRequestRepository handles database operations for scrim requests
type ScrimRequestRepository struct {
	db *gorm.DB
}

// NewScrimRequestRepository creates a new scrim request repository
func NewScrimRequestRepository(db *gorm.DB) *ScrimRequestRepository {
	return &ScrimRequestRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ScrimRequestRepository) WithTx(tx *gorm.DB) *ScrimRequestRepository {
	return &ScrimRequestRepository{db: tx}
}

// Create creates a new scrim request
func (r *ScrimRequestRepository) Create(request *models.ScrimRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a scrim request by ID
func (r *ScrimRequestRepository) GetByID(id int64) (*models.ScrimRequest, error) {
	var request models.ScrimRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetWithScrim retrieves a scrim request with its scrim, the host team's
// roster, the requesting team, and the requesting user
func (r *ScrimRequestRepository) GetWithScrim(id int64) (*models.ScrimRequest, error) {
	var request models.ScrimRequest
	err := r.db.
		Preload("Scrim").
		Preload("Scrim.HostTeam").
		Preload("Scrim.HostTeam.Memberships").
		Preload("Team").
		Preload("RequestedBy").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// PendingExists reports whether a pending request already exists for the
// (scrim, team) natural key
func (r *ScrimRequestRepository) PendingExists(scrimID, teamID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ScrimRequest{}).
		Where("scrim_id = ? AND team_id = ? AND status = ?",
			scrimID, teamID, models.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

// MarkResponded flips a pending request to the given terminal status,
// conditional on it still being pending. codeSent records whether the accept
// shared the scrim code with the requesting team.
func (r *ScrimRequestRepository) MarkResponded(id int64, status models.RequestStatus, codeSent bool, at time.Time) (bool, error) {
	updates := map[string]interface{}{
		"status":       status,
		"responded_at": at,
	}
	if codeSent {
		updates["code_sent"] = true
	}
	result := r.db.Model(&models.ScrimRequest{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Cancel flips an accepted request to cancelled and clears its participant
// snapshot. Used when the matched team leaves the scrim.
func (r *ScrimRequestRepository) Cancel(id int64) (bool, error) {
	result := r.db.Model(&models.ScrimRequest{}).
		Where("id = ? AND status = ?", id, models.RequestStatusAccepted).
		Updates(map[string]interface{}{
			"status":          models.RequestStatusCancelled,
			"participant_ids": models.Int64List{},
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteByScrim removes every request of a scrim
func (r *ScrimRequestRepository) DeleteByScrim(scrimID int64) error {
	return r.db.Delete(&models.ScrimRequest{}, "scrim_id = ?", scrimID).Error
}

// CountByScrim counts the requests of a scrim, optionally filtered by status
func (r *ScrimRequestRepository) CountByScrim(scrimID int64, status *models.RequestStatus) (int64, error) {
	query := r.db.Model(&models.ScrimRequest{}).Where("scrim_id = ?", scrimID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// ListPendingByScrim retrieves the pending requests of a scrim, oldest first
func (r *ScrimRequestRepository) ListPendingByScrim(scrimID int64) ([]models.ScrimRequest, error) {
	var requests []models.ScrimRequest
	err := r.db.
		Preload("Team").
		Preload("RequestedBy").
		Where("scrim_id = ? AND status = ?", scrimID, models.RequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

package repository

import (
	"scrimhub-backend/internal/database/models"

	"gorm.io/gorm"
)

// ScrimRepository handles database operations for scrims
type ScrimRepository struct {
	db *gorm.DB
}

// NewScrimRepository creates a new scrim repository
func NewScrimRepository(db *gorm.DB) *ScrimRepository {
	return &ScrimRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ScrimRepository) WithTx(tx *gorm.DB) *ScrimRepository {
	return &ScrimRepository{db: tx}
}

// Create creates a new scrim
func (r *ScrimRepository) Create(scrim *models.Scrim) error {
	return r.db.Create(scrim).Error
}

// GetByID retrieves a scrim by ID
func (r *ScrimRepository) GetByID(id int64) (*models.Scrim, error) {
	var scrim models.Scrim
	err := r.db.First(&scrim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scrim, nil
}

// GetWithHostTeam retrieves a scrim with its host team and roster
func (r *ScrimRepository) GetWithHostTeam(id int64) (*models.Scrim, error) {
	var scrim models.Scrim
	err := r.db.
		Preload("HostTeam").
		Preload("HostTeam.Memberships").
		First(&scrim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scrim, nil
}

// GetWithAcceptedRequests retrieves a scrim with its host roster and any
// accepted requests including their team rosters
func (r *ScrimRepository) GetWithAcceptedRequests(id int64) (*models.Scrim, error) {
	var scrim models.Scrim
	err := r.db.
		Preload("HostTeam").
		Preload("HostTeam.Memberships").
		Preload("Requests", "status = ?", models.RequestStatusAccepted).
		Preload("Requests.Team").
		Preload("Requests.Team.Memberships").
		First(&scrim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scrim, nil
}

// UpdateCode sets the scrim code
func (r *ScrimRepository) UpdateCode(id int64, code string) error {
	return r.db.Model(&models.Scrim{}).Where("id = ?", id).Update("scrim_code", code).Error
}

// TransitionStatus flips a scrim between open and matched. The update is
// conditional on the current status, so two concurrent accepts on requests
// of the same scrim produce at most one matched outcome.
func (r *ScrimRepository) TransitionStatus(id int64, from, to models.ScrimStatus) (bool, error) {
	result := r.db.Model(&models.Scrim{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete deletes a scrim
func (r *ScrimRepository) Delete(id int64) error {
	return r.db.Delete(&models.Scrim{}, "id = ?", id).Error
}

// ListOpen retrieves open scrims with their host teams, newest first
func (r *ScrimRepository) ListOpen(gameID *int64) ([]models.Scrim, error) {
	query := r.db.Model(&models.Scrim{}).Where("scrims.status = ?", models.ScrimStatusOpen)
	if gameID != nil {
		query = query.
			Joins("JOIN teams ON teams.id = scrims.host_team_id").
			Where("teams.game_id = ?", *gameID)
	}

	var scrims []models.Scrim
	err := query.
		Preload("HostTeam").
		Preload("HostTeam.Memberships").
		Preload("HostTeam.Memberships.User").
		Order("scrims.created_at DESC").
		Find(&scrims).Error
	return scrims, err
}

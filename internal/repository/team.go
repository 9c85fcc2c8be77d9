package repository

import (
	"strings"

	"scrimhub-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *TeamRepository) WithTx(tx *gorm.DB) *TeamRepository {
	return &TeamRepository{db: tx}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetBySlug retrieves a team by its slug
func (r *TeamRepository) GetBySlug(slug string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMemberships retrieves a team with its roster ordered by join time
func (r *TeamRepository) GetWithMemberships(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC")
		}).
		Preload("Memberships.User").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetBySlugWithMemberships retrieves a team by slug with its roster
func (r *TeamRepository) GetBySlugWithMemberships(slug string) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC")
		}).
		Preload("Memberships.User").
		First(&team, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// NameExists reports whether another team already uses the name,
// case-insensitively
func (r *TeamRepository) NameExists(name string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(strings.TrimSpace(name)), excludeID).
		Count(&count).Error
	return count > 0, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SetRecruiting sets the recruiting flag of a team
func (r *TeamRepository) SetRecruiting(teamID int64, isRecruiting bool) error {
	return r.db.Model(&models.Team{}).Where("id = ?", teamID).Update("is_recruiting", isRecruiting).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id int64) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// ListRecruiting retrieves recruiting teams, optionally filtered by game and
// rank, newest first
func (r *TeamRepository) ListRecruiting(gameID, rankID *int64) ([]models.Team, error) {
	query := r.db.Model(&models.Team{}).Where("is_recruiting = ?", true)
	if gameID != nil {
		query = query.Where("game_id = ?", *gameID)
	}
	if rankID != nil {
		query = query.Where("rank_id = ?", *rankID)
	}

	var teams []models.Team
	err := query.
		Preload("Memberships").
		Preload("Memberships.User").
		Preload("Game").
		Order("created_at DESC").
		Find(&teams).Error
	return teams, err
}

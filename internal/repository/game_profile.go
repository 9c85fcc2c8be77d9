package repository

import (
	"scrimhub-backend/internal/database/models"

	"gorm.io/gorm"
)

// GameProfileRepository handles database operations for per-game user
// profiles. The workflow engine writes only the lookingForTeam flag; the
// rest belongs to the profile layer.
type GameProfileRepository struct {
	db *gorm.DB
}

// NewGameProfileRepository creates a new game profile repository
func NewGameProfileRepository(db *gorm.DB) *GameProfileRepository {
	return &GameProfileRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *GameProfileRepository) WithTx(tx *gorm.DB) *GameProfileRepository {
	return &GameProfileRepository{db: tx}
}

// Create creates a new profile
func (r *GameProfileRepository) Create(profile *models.UserGameProfile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID
func (r *GameProfileRepository) GetByID(id int64) (*models.UserGameProfile, error) {
	var profile models.UserGameProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetFirstByUser retrieves the user's oldest profile
func (r *GameProfileRepository) GetFirstByUser(userID int64) (*models.UserGameProfile, error) {
	var profile models.UserGameProfile
	err := r.db.Where("user_id = ?", userID).Order("id ASC").First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserAndGame retrieves the profile for a (user, game) pair with the
// user preloaded
func (r *GameProfileRepository) GetByUserAndGame(userID, gameID int64) (*models.UserGameProfile, error) {
	var profile models.UserGameProfile
	err := r.db.Preload("User").First(&profile, "user_id = ? AND game_id = ?", userID, gameID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOwned retrieves a profile only if it belongs to the user
func (r *GameProfileRepository) GetOwned(id, userID int64) (*models.UserGameProfile, error) {
	var profile models.UserGameProfile
	err := r.db.First(&profile, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetLookingForTeam sets the lookingForTeam flag on one profile
func (r *GameProfileRepository) SetLookingForTeam(id int64, looking bool) error {
	return r.db.Model(&models.UserGameProfile{}).Where("id = ?", id).Update("looking_for_team", looking).Error
}

// DisableLookingForTeam turns off the flag on all of a user's profiles.
// Called by the capacity policy when the user reaches the team cap.
func (r *GameProfileRepository) DisableLookingForTeam(userID int64) error {
	return r.db.Model(&models.UserGameProfile{}).
		Where("user_id = ? AND looking_for_team = ?", userID, true).
		Update("looking_for_team", false).Error
}

// ListLookingForTeam retrieves looking-for-team profiles, optionally
// filtered by game and rank, best record first
func (r *GameProfileRepository) ListLookingForTeam(gameID, rankID *int64) ([]models.UserGameProfile, error) {
	query := r.db.Model(&models.UserGameProfile{}).Where("looking_for_team = ?", true)
	if gameID != nil {
		query = query.Where("game_id = ?", *gameID)
	}
	if rankID != nil {
		query = query.Where("rank_id = ?", *rankID)
	}

	var profiles []models.UserGameProfile
	err := query.
		Preload("User").
		Preload("Game").
		Order("wins DESC").
		Find(&profiles).Error
	return profiles, err
}

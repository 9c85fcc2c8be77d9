package repository

import (
	"scrimhub-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository handles database operations for team memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *MembershipRepository) WithTx(tx *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: tx}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.TeamMembership) error {
	return r.db.Create(membership).Error
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(id int64) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := r.db.First(&membership, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByTeamAndUser retrieves the membership for a (team, user) pair
func (r *MembershipRepository) GetByTeamAndUser(teamID, userID int64) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := r.db.First(&membership, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// CountByUser counts how many teams a user belongs to
func (r *MembershipRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMembership{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountByUserLocked counts a user's memberships while holding a row lock on
// the user, serializing concurrent accepts for the same subject. Must run
// inside a transaction.
func (r *MembershipRepository) CountByUserLocked(userID int64) (int64, error) {
	var user models.User
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return r.CountByUser(userID)
}

// Upsert inserts the membership if the (team, user) pair does not exist yet.
// An existing row is left untouched, so repeated accepts of equivalent
// requests converge on the same final state.
func (r *MembershipRepository) Upsert(membership *models.TeamMembership) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(membership).Error
}

// UpdateRole sets the role of a membership
func (r *MembershipRepository) UpdateRole(id int64, role models.TeamRole) error {
	return r.db.Model(&models.TeamMembership{}).Where("id = ?", id).Update("role", role).Error
}

// Delete removes a membership
func (r *MembershipRepository) Delete(id int64) error {
	return r.db.Delete(&models.TeamMembership{}, "id = ?", id).Error
}

// DeleteByTeam removes every membership of a team
func (r *MembershipRepository) DeleteByTeam(teamID int64) error {
	return r.db.Delete(&models.TeamMembership{}, "team_id = ?", teamID).Error
}

// ListByUser retrieves all memberships of a user with their teams
func (r *MembershipRepository) ListByUser(userID int64) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership
	err := r.db.Preload("Team").Where("user_id = ?", userID).Order("joined_at ASC").Find(&memberships).Error
	return memberships, err
}

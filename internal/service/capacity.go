package service

import (
	"fmt"

	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/repository"

	"gorm.io/gorm"
)

// MaxTeamsPerUser is the cap on simultaneous team memberships
const MaxTeamsPerUser = 3

// CapacityPolicy enforces the per-user team cap and the auto-opt-out of
// looking-for-team flags when the cap is reached.
type CapacityPolicy struct {
	membershipRepo *repository.MembershipRepository
	profileRepo    *repository.GameProfileRepository
}

// NewCapacityPolicy creates a new capacity policy
func NewCapacityPolicy(membershipRepo *repository.MembershipRepository, profileRepo *repository.GameProfileRepository) *CapacityPolicy {
	return &CapacityPolicy{
		membershipRepo: membershipRepo,
		profileRepo:    profileRepo,
	}
}

// CheckTeamCapacity fails with ErrCapacityExceeded when the user is already
// at the cap. A point check, suitable for request-creation time.
func (p *CapacityPolicy) CheckTeamCapacity(userID int64) error {
	count, err := p.membershipRepo.CountByUser(userID)
	if err != nil {
		return fmt.Errorf("failed to count memberships: %w", err)
	}
	if count >= MaxTeamsPerUser {
		return apperrors.ErrCapacityExceeded
	}
	return nil
}

// ReserveMembershipSlot re-checks capacity inside the accept transaction,
// counting under a row lock on the user so two concurrently accepted invites
// cannot both slip under the cap. Returns the count before the new
// membership. Must be called with the transaction handle.
func (p *CapacityPolicy) ReserveMembershipSlot(tx *gorm.DB, userID int64) (int64, error) {
	count, err := p.membershipRepo.WithTx(tx).CountByUserLocked(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}
	if count >= MaxTeamsPerUser {
		return count, apperrors.ErrCapacityExceeded
	}
	return count, nil
}

// AutoOptOutIfAtCap disables the user's looking-for-team flags when the
// membership count has reached the cap
func (p *CapacityPolicy) AutoOptOutIfAtCap(tx *gorm.DB, userID int64, newCount int64) error {
	if newCount < MaxTeamsPerUser {
		return nil
	}
	if err := p.profileRepo.WithTx(tx).DisableLookingForTeam(userID); err != nil {
		return fmt.Errorf("failed to disable looking-for-team flags: %w", err)
	}
	return nil
}

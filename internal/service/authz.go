package service

import (
	"scrimhub-backend/internal/database/models"
)

// The authorization guard is a set of pure decision functions over a team's
// membership list. No I/O happens here; callers load the roster and every
// transition re-reads it, so decisions never act on stale role data.

// FindMembership returns the viewer's membership in the list, or nil
func FindMembership(viewerID int64, memberships []models.TeamMembership) *models.TeamMembership {
	for i := range memberships {
		if memberships[i].UserID == viewerID {
			return &memberships[i]
		}
	}
	return nil
}

// CanAct reports whether the viewer holds one of the required roles on the
// team. Roles are compared over the normalized enum; ParseTeamRole at the
// store boundary already folded display casing away.
func CanAct(viewerID int64, memberships []models.TeamMembership, required ...models.TeamRole) bool {
	m := FindMembership(viewerID, memberships)
	if m == nil {
		return false
	}
	for _, role := range required {
		if m.Role == role {
			return true
		}
	}
	return false
}

// CanManage reports whether the viewer is an owner or manager of the team
func CanManage(viewerID int64, memberships []models.TeamMembership) bool {
	return CanAct(viewerID, memberships, models.TeamRoleOwner, models.TeamRoleManager)
}

// IsOwner reports whether the viewer owns the team
func IsOwner(viewerID int64, memberships []models.TeamMembership) bool {
	return CanAct(viewerID, memberships, models.TeamRoleOwner)
}

// CanManageMember decides whether a viewer with viewerRole may kick or
// change the role of a member with targetRole. A manager may manage any
// member but never the owner.
func CanManageMember(viewerRole, targetRole models.TeamRole) bool {
	if !viewerRole.CanManageTeam() {
		return false
	}
	if viewerRole == models.TeamRoleManager && targetRole == models.TeamRoleOwner {
		return false
	}
	return true
}

package models

import (
	"strings"
	"time"
)

// TeamRole represents the role of a member within a team. Roles are stored
// normalized; ParseTeamRole is the single place where display casing such as
// "Owner" vs "owner" is folded away.
type TeamRole string

const (
	TeamRoleOwner   TeamRole = "owner"
	TeamRoleManager TeamRole = "manager"
	TeamRoleMember  TeamRole = "member"
)

// ParseTeamRole normalizes a role string case-insensitively
func ParseTeamRole(s string) (TeamRole, bool) {
	switch TeamRole(strings.ToLower(strings.TrimSpace(s))) {
	case TeamRoleOwner:
		return TeamRoleOwner, true
	case TeamRoleManager:
		return TeamRoleManager, true
	case TeamRoleMember:
		return TeamRoleMember, true
	}
	return "", false
}

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleManager, TeamRoleMember:
		return true
	}
	return false
}

// CanManageTeam reports whether the role may act for the team (invites, scrim
// hosting, member management)
func (r TeamRole) CanManageTeam() bool {
	return r == TeamRoleOwner || r == TeamRoleManager
}

// Team represents a roster competing in one game
type Team struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:24" validate:"required,min=3,max=24"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null;size:32" validate:"required"`
	Region       Region `json:"region" gorm:"type:varchar(8);not null" validate:"required"`
	GameID       int64  `json:"game_id" gorm:"not null;index" validate:"required"`
	IsRecruiting bool   `json:"is_recruiting" gorm:"not null;default:false"`
	Bio          string `json:"bio" gorm:"size:500" validate:"max=500"`
	LogoURL      string `json:"logo_url" gorm:"size:200"`
	RankID       *int64 `json:"rank_id,omitempty"`

	// Relationships
	Game        *Game            `json:"game,omitempty" gorm:"foreignKey:GameID"`
	Memberships []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// MembershipOf returns the membership row for userID, or nil
func (t *Team) MembershipOf(userID int64) *TeamMembership {
	for i := range t.Memberships {
		if t.Memberships[i].UserID == userID {
			return &t.Memberships[i]
		}
	}
	return nil
}

// ManagerIDs returns the user ids of every owner and manager on the roster
func (t *Team) ManagerIDs() []int64 {
	var ids []int64
	for _, m := range t.Memberships {
		if m.Role.CanManageTeam() {
			ids = append(ids, m.UserID)
		}
	}
	return ids
}

// MemberIDSet returns the roster as a set for participant sanitization
func (t *Team) MemberIDSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(t.Memberships))
	for _, m := range t.Memberships {
		set[m.UserID] = struct{}{}
	}
	return set
}

// TeamMembership links a user to a team with a role. Exactly one owner exists
// per team at all times; the owner-removal paths are disallowed in the
// workflow layer.
type TeamMembership struct {
	BaseModel
	TeamID   int64     `json:"team_id" gorm:"not null;uniqueIndex:idx_memberships_team_user" validate:"required"`
	UserID   int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_memberships_team_user;index" validate:"required"`
	Role     TeamRole  `json:"role" gorm:"type:varchar(16);not null;default:'member'" validate:"required"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null;autoCreateTime"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}

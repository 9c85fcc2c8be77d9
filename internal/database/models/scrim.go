package models

import (
	"strings"
	"time"
)

// ScrimStatus is the lifecycle of a scrim listing. A scrim is matched exactly
// while one accepted request exists; leaving reverts it to open.
type ScrimStatus string

const (
	ScrimStatusOpen    ScrimStatus = "open"
	ScrimStatusMatched ScrimStatus = "matched"
)

// Ruleset selects the rule package a scrim is played under
type Ruleset string

const (
	RulesetCDL    Ruleset = "CDL"
	RulesetCustom Ruleset = "CUSTOM"
)

// NormalizeRuleset folds a raw ruleset string onto the closed enum,
// defaulting to CDL
func NormalizeRuleset(s string) Ruleset {
	if strings.EqualFold(s, string(RulesetCustom)) {
		return RulesetCustom
	}
	return RulesetCDL
}

// Scrim is a practice-match listing hosted by one team. Opposing teams apply
// via ScrimRequest; accepting one flips the scrim to matched.
type Scrim struct {
	BaseModel
	HostTeamID         int64       `json:"host_team_id" gorm:"not null;index" validate:"required"`
	BestOf             int         `json:"best_of" gorm:"not null" validate:"required,min=1,max=9"`
	Gamemode           string      `json:"gamemode" gorm:"not null;size:64" validate:"required,max=64"`
	Map                string      `json:"map" gorm:"not null;size:64" validate:"required,max=64"`
	TeamSize           int         `json:"team_size" gorm:"not null;default:4" validate:"min=1,max=10"`
	Ruleset            Ruleset     `json:"ruleset" gorm:"type:varchar(16);not null;default:'CDL'"`
	ScrimCode          *string     `json:"scrim_code,omitempty" gorm:"uniqueIndex;size:16"`
	ScheduledAt        *time.Time  `json:"scheduled_at,omitempty"` // nil means TBD
	Status             ScrimStatus `json:"status" gorm:"type:varchar(16);not null;default:'open'"`
	CreatedByUserID    int64       `json:"created_by_user_id" gorm:"not null" validate:"required"`
	HostParticipantIDs Int64List   `json:"host_participant_ids" gorm:"type:jsonb"`

	// Relationships
	HostTeam *Team          `json:"host_team,omitempty" gorm:"foreignKey:HostTeamID"`
	Requests []ScrimRequest `json:"requests,omitempty" gorm:"foreignKey:ScrimID"`
}

// TableName returns the table name for Scrim
func (Scrim) TableName() string {
	return "scrims"
}

// ScrimRequest is one team's application to play an open scrim. At most one
// pending request exists per (scrim, team); at most one request is ever
// accepted per scrim, enforced by the scrim's open->matched gate.
type ScrimRequest struct {
	BaseModel
	ScrimID           int64         `json:"scrim_id" gorm:"not null;index" validate:"required"`
	TeamID            int64         `json:"team_id" gorm:"not null;index" validate:"required"`
	RequestedByUserID int64         `json:"requested_by_user_id" gorm:"not null" validate:"required"`
	Status            RequestStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	ParticipantIDs    Int64List     `json:"participant_ids" gorm:"type:jsonb"`
	CodeSent          bool          `json:"code_sent" gorm:"not null;default:false"`
	RespondedAt       *time.Time    `json:"responded_at,omitempty"`

	// Relationships
	Scrim       *Scrim `json:"scrim,omitempty" gorm:"foreignKey:ScrimID"`
	Team        *Team  `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	RequestedBy *User  `json:"requested_by,omitempty" gorm:"foreignKey:RequestedByUserID"`
}

// TableName returns the table name for ScrimRequest
func (ScrimRequest) TableName() string {
	return "scrim_requests"
}

package models

import "time"

// TeamRequestKind distinguishes manager-initiated invites from
// player-initiated join requests
type TeamRequestKind string

const (
	TeamRequestInvite TeamRequestKind = "invite"
	TeamRequestJoin   TeamRequestKind = "join_request"
)

// IsValid checks if the TeamRequestKind is valid
func (k TeamRequestKind) IsValid() bool {
	return k == TeamRequestInvite || k == TeamRequestJoin
}

// RequestStatus is the shared lifecycle for team and scrim requests.
// Pending is the only state transitions are accepted from; everything else
// is terminal.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s != RequestStatusPending
}

// TeamRequest represents a pending roster change: either a team inviting a
// player (kind=invite) or a player asking to join a recruiting team
// (kind=join_request). UserID is always the subject being added;
// CreatedByUserID is the actor who initiated the request.
type TeamRequest struct {
	BaseModel
	Kind            TeamRequestKind `json:"kind" gorm:"type:varchar(16);not null;index:idx_team_requests_pending" validate:"required"`
	Status          RequestStatus   `json:"status" gorm:"type:varchar(16);not null;default:'pending';index:idx_team_requests_pending"`
	TeamID          int64           `json:"team_id" gorm:"not null;index:idx_team_requests_pending" validate:"required"`
	UserID          int64           `json:"user_id" gorm:"not null;index:idx_team_requests_pending" validate:"required"`
	CreatedByUserID int64           `json:"created_by_user_id" gorm:"not null" validate:"required"`
	RespondedAt     *time.Time      `json:"responded_at,omitempty"`

	// Relationships
	Team      *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User      *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedBy *User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByUserID"`
}

// TableName returns the table name for TeamRequest
func (TeamRequest) TableName() string {
	return "team_requests"
}

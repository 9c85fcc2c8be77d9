package models

import (
	"encoding/json"
	"time"
)

// NotificationType identifies which workflow transition produced a
// notification
type NotificationType string

const (
	NotificationTeamInvite           NotificationType = "TEAM_INVITE"
	NotificationTeamJoinRequest      NotificationType = "TEAM_JOIN_REQUEST"
	NotificationScrimRequestReceived NotificationType = "SCRIM_REQUEST_RECEIVED"
	NotificationScrimRequestAccepted NotificationType = "SCRIM_REQUEST_ACCEPTED"
	NotificationScrimRequestRejected NotificationType = "SCRIM_REQUEST_REJECTED"
)

// Notification is created exclusively as a side effect of a workflow
// transition, inside the same transaction, so it is exactly-once with the
// state change it describes. It is never deleted; ReadAt is the only field
// mutated afterwards.
type Notification struct {
	BaseModel
	RecipientID    int64            `json:"recipient_id" gorm:"not null;index:idx_notifications_unread" validate:"required"`
	Type           NotificationType `json:"type" gorm:"type:varchar(32);not null" validate:"required"`
	Title          string           `json:"title" gorm:"not null;size:100" validate:"required,max=100"`
	Body           string           `json:"body" gorm:"not null;size:500" validate:"required,max=500"`
	ReadAt         *time.Time       `json:"read_at,omitempty" gorm:"index:idx_notifications_unread"`
	TeamID         *int64           `json:"team_id,omitempty"`
	TeamRequestID  *int64           `json:"team_request_id,omitempty" gorm:"index"`
	ScrimID        *int64           `json:"scrim_id,omitempty"`
	ScrimRequestID *int64           `json:"scrim_request_id,omitempty" gorm:"index"`
	Metadata       json.RawMessage  `json:"metadata,omitempty" gorm:"type:jsonb"`

	// Relationships
	Team         *Team         `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	TeamRequest  *TeamRequest  `json:"team_request,omitempty" gorm:"foreignKey:TeamRequestID"`
	Scrim        *Scrim        `json:"scrim,omitempty" gorm:"foreignKey:ScrimID"`
	ScrimRequest *ScrimRequest `json:"scrim_request,omitempty" gorm:"foreignKey:ScrimRequestID"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

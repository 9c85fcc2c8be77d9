package repository

import (
	"time"

	"scrimhub-backend/internal/database/models"

	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *NotificationRepository) WithTx(tx *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: tx}
}

// Create inserts a notification row
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// CreateBatch inserts several notification rows at once (join-request fanout
// to every owner and manager)
func (r *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(&notifications).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id int64) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetForRecipient retrieves a notification only if it belongs to the viewer
func (r *NotificationRepository) GetForRecipient(id, recipientID int64) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ? AND recipient_id = ?", id, recipientID).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// CountUnread counts the viewer's unread notifications
func (r *NotificationRepository) CountUnread(recipientID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error
	return count, err
}

// ListUnread retrieves the viewer's unread notifications, newest first,
// bounded by limit, with the referenced entities preloaded for display
func (r *NotificationRepository) ListUnread(recipientID int64, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Preload("Team").
		Preload("TeamRequest").
		Preload("TeamRequest.Team").
		Preload("TeamRequest.User").
		Preload("TeamRequest.CreatedBy").
		Preload("Scrim").
		Preload("Scrim.HostTeam").
		Preload("ScrimRequest").
		Preload("ScrimRequest.Team").
		Preload("ScrimRequest.RequestedBy").
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead sets readAt on a notification, conditional on it belonging to the
// viewer and still being unread. Returns whether a row was affected.
func (r *NotificationRepository) MarkRead(id, recipientID int64, at time.Time) (bool, error) {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", id, recipientID).
		Update("read_at", at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// MarkReadByTeamRequest marks the viewer's unread notifications tied to a
// team request as read. Called when the request is resolved so the feed does
// not keep offering a decided request.
func (r *NotificationRepository) MarkReadByTeamRequest(teamRequestID, recipientID int64, at time.Time) error {
	return r.db.Model(&models.Notification{}).
		Where("team_request_id = ? AND recipient_id = ? AND read_at IS NULL", teamRequestID, recipientID).
		Update("read_at", at).Error
}

// MarkReadByScrimRequest marks the viewer's unread notifications tied to a
// scrim request as read
func (r *NotificationRepository) MarkReadByScrimRequest(scrimRequestID, recipientID int64, at time.Time) error {
	return r.db.Model(&models.Notification{}).
		Where("scrim_request_id = ? AND recipient_id = ? AND read_at IS NULL", scrimRequestID, recipientID).
		Update("read_at", at).Error
}

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scrimhub-backend/internal/database/models"
	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/repository"

	"gorm.io/gorm"
)

// NotificationService serves a viewer's unread feed and read receipts.
// Notifications are created by the workflow services, never here.
type NotificationService struct {
	repo           *repository.NotificationRepository
	membershipRepo *repository.MembershipRepository
	limit          int
}

// NewNotificationService creates a new notification service. limit caps the
// unread feed page size.
func NewNotificationService(repo *repository.NotificationRepository, membershipRepo *repository.MembershipRepository, limit int) *NotificationService {
	return &NotificationService{
		repo:           repo,
		membershipRepo: membershipRepo,
		limit:          limit,
	}
}

// NotificationResponse represents one feed entry
type NotificationResponse struct {
	ID             int64           `json:"id"`
	Type           string          `json:"type"`
	Title          string          `json:"title"`
	Body           string          `json:"body"`
	TeamID         *int64          `json:"team_id,omitempty"`
	TeamRequestID  *int64          `json:"team_request_id,omitempty"`
	ScrimID        *int64          `json:"scrim_id,omitempty"`
	ScrimRequestID *int64          `json:"scrim_request_id,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// NotificationFeedResponse represents the unread feed with the counters the
// client renders next to it
type NotificationFeedResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
	TeamCount     int64                  `json:"team_count"`
}

// ListUnread returns the viewer's unread notifications, newest first, capped
// at the configured page size. UnreadCount is the total, not the page size.
func (s *NotificationService) ListUnread(viewerID int64) (*NotificationFeedResponse, error) {
	notifications, err := s.repo.ListUnread(viewerID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unreadCount, err := s.repo.CountUnread(viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	teamCount, err := s.membershipRepo.CountByUser(viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count memberships: %w", err)
	}

	feed := &NotificationFeedResponse{
		Notifications: make([]NotificationResponse, len(notifications)),
		UnreadCount:   unreadCount,
		TeamCount:     teamCount,
	}
	for i := range notifications {
		feed.Notifications[i] = *toNotificationResponse(&notifications[i])
	}
	return feed, nil
}

// MarkRead marks one of the viewer's notifications read and returns the
// refreshed unread count. Marking an already-read notification is a no-op
// success; marking someone else's is not found.
func (s *NotificationService) MarkRead(viewerID, notificationID int64) (int64, error) {
	if _, err := s.repo.GetForRecipient(notificationID, viewerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrNotificationNotFound
		}
		return 0, fmt.Errorf("failed to load notification: %w", err)
	}

	if _, err := s.repo.MarkRead(notificationID, viewerID, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("failed to mark notification read: %w", err)
	}

	unreadCount, err := s.repo.CountUnread(viewerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return unreadCount, nil
}

func toNotificationResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:             n.ID,
		Type:           string(n.Type),
		Title:          n.Title,
		Body:           n.Body,
		TeamID:         n.TeamID,
		TeamRequestID:  n.TeamRequestID,
		ScrimID:        n.ScrimID,
		ScrimRequestID: n.ScrimRequestID,
		Metadata:       n.Metadata,
		CreatedAt:      n.CreatedAt.Format(time.RFC3339),
	}
}

package handlers

import (
	"net/http"

	"scrimhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the notification feed
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListUnread handles GET /notifications
// @Summary List unread notifications
// @Description Get the caller's unread notifications, newest first, with counters
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} service.NotificationFeedResponse "Unread feed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	feed, err := h.notificationService.ListUnread(viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// MarkRead handles POST /notifications/:id/read
// @Summary Mark a notification read
// @Description Mark one of the caller's notifications read and return the refreshed unread count
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]interface{} "Refreshed unread count"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	unreadCount, err := h.notificationService.MarkRead(viewer, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": unreadCount})
}

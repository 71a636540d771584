package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetUnread lists the caller's unread notifications
// @Summary List unread notifications
// @Description Get the caller's unread notifications, newest first. Frontends poll this endpoint.
// @Tags notifications
// @Produce json
// @Success 200 {array} service.NotificationResponse "Successfully retrieved notifications"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security CookieAuth
// @Router /notifications/unread [get]
func (h *NotificationHandler) GetUnread(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.Unread(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead marks one of the caller's notifications as read
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} service.NotificationResponse "Successfully marked read"
// @Failure 400 {object} map[string]interface{} "Invalid notification ID"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Security CookieAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	notification, err := h.notificationService.MarkRead(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

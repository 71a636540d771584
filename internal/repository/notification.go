package repository

import (
	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
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

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetUnreadByRecipient retrieves a user's unread notifications, newest first
func (r *NotificationRepository) GetUnreadByRecipient(recipientID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks a notification as read. Marking an already-read
// notification is a no-op, not an error.
func (r *NotificationRepository) MarkRead(notification *models.Notification) error {
	if notification.IsRead {
		return nil
	}
	notification.IsRead = true
	return r.db.Model(notification).Update("is_read", true).Error
}

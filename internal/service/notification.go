package service

import (
	"errors"
	"fmt"

	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles business logic for notifications
type NotificationService struct {
	notifications repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Unread lists the actor's unread notifications, newest first
func (s *NotificationService) Unread(actor policy.Actor) ([]NotificationResponse, error) {
	notifications, err := s.notifications.GetUnreadByRecipient(actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, NewNotificationResponse(&notifications[i]))
	}
	return responses, nil
}

// MarkRead marks one of the actor's notifications as read. The read flag
// only ever moves from false to true; re-marking is a no-op.
func (s *NotificationService) MarkRead(actor policy.Actor, notificationID uuid.UUID) (*NotificationResponse, error) {
	notification, err := s.notifications.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	if err := policy.CanMarkNotificationRead(actor, notification).Err(); err != nil {
		return nil, err
	}

	if err := s.notifications.MarkRead(notification); err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	response := NewNotificationResponse(notification)
	return &response, nil
}

package services

import (
	"encoding/json"
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// NotificationService materializes domain events into notification rows and
// serves them to users.
type NotificationService struct {
	repo repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// HandleEvent decodes a published domain event and stores the matching
// notification. Used as the RabbitMQ consumer callback.
func (s *NotificationService) HandleEvent(body []byte) error {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	if ev.UserID == 0 {
		return fmt.Errorf("event %q has no target user", ev.Type)
	}

	notifType := models.NotificationTypeSystem
	switch ev.Type {
	case EventOrderCreated, EventOrderStatusChanged:
		notifType = models.NotificationTypeOrder
	case EventMessageSent:
		notifType = models.NotificationTypeMessage
	case EventModRequestCreated, EventModRequestAnswered:
		notifType = models.NotificationTypeModRequest
	}

	return s.repo.Create(&models.Notification{
		UserID:  ev.UserID,
		Title:   ev.Title,
		Message: ev.Message,
		Type:    notifType,
		Data:    ev.Data,
	})
}

// GetNotifications retrieves a user's notifications, newest first.
func (s *NotificationService) GetNotifications(userID uint) ([]models.Notification, error) {
	return s.repo.GetByUser(userID)
}

// MarkRead marks one notification as read.
func (s *NotificationService) MarkRead(id uint) error {
	return s.repo.MarkRead(id)
}

// MarkAllRead marks all of a user's notifications as read.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.repo.MarkAllRead(userID)
}

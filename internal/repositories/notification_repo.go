package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/models"
)

// NotificationRepository defines the interface for notification data access.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByUser(userID uint) ([]models.Notification, error)
	MarkRead(id uint) error
	MarkAllRead(userID uint) error
}

// GORMNotificationRepository is a GORM implementation of NotificationRepository.
type GORMNotificationRepository struct {
	db *gorm.DB
}

// NewGORMNotificationRepository creates a new instance of GORMNotificationRepository.
func NewGORMNotificationRepository(db *gorm.DB) *GORMNotificationRepository {
	return &GORMNotificationRepository{db: db}
}

// Create persists a new notification.
func (r *GORMNotificationRepository) Create(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByUser retrieves a user's notifications, newest first.
func (r *GORMNotificationRepository) GetByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to get notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}

// MarkRead marks a single notification as read.
func (r *GORMNotificationRepository) MarkRead(id uint) error {
	res := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification with ID %d not found", id)
	}
	return nil
}

// MarkAllRead marks every unread notification for a user as read.
func (r *GORMNotificationRepository) MarkAllRead(userID uint) error {
	if err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications read for user %d: %w", userID, err)
	}
	return nil
}

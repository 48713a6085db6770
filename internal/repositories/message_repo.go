package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/models"
)

// MessageRepository defines the interface for message data access.
type MessageRepository interface {
	Create(message *models.Message) error
	GetConversation(userA, userB uint) ([]models.Message, error)
}

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{db: db}
}

// Create persists a new message.
func (r *GORMMessageRepository) Create(message *models.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetConversation retrieves all messages exchanged between two users in
// either direction, oldest first.
func (r *GORMMessageRepository) GetConversation(userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation between %d and %d: %w", userA, userB, err)
	}
	return messages, nil
}

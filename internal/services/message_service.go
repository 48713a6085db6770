package services

import (
	"fmt"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// MessageService handles direct messages between users.
type MessageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	publisher   EventPublisher
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, publisher EventPublisher) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// SendMessage stores a message and publishes a message.sent event so the
// receiver gets notified.
func (s *MessageService) SendMessage(senderID, receiverID uint, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content must not be empty")
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("cannot send a message to yourself")
	}

	sender, err := s.userRepo.GetByID(senderID)
	if err != nil {
		return nil, fmt.Errorf("sender %d not found: %w", senderID, err)
	}
	if _, err := s.userRepo.GetByID(receiverID); err != nil {
		return nil, fmt.Errorf("receiver %d not found: %w", receiverID, err)
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	if err := publishEvent(s.publisher, Event{
		Type:    EventMessageSent,
		UserID:  receiverID,
		Title:   "New message",
		Message: fmt.Sprintf("%s sent you a message.", sender.Username),
		Data:    map[string]string{"senderId": fmt.Sprint(senderID)},
	}); err != nil {
		log.Printf("Warning: failed to publish message sent event: %v", err)
	}

	return message, nil
}

// GetConversation retrieves all messages between two users, oldest first.
func (s *MessageService) GetConversation(userA, userB uint) ([]models.Message, error) {
	return s.messageRepo.GetConversation(userA, userB)
}

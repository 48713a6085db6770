package models

import "time"

// Message is a direct message between two users. There is no thread entity;
// a conversation is just the messages exchanged between a pair of users.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"senderId" gorm:"index;not null"`
	Sender     User      `json:"-" gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	ReceiverID uint      `json:"receiverId" gorm:"index;not null"`
	Receiver   User      `json:"-" gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
	Content    string    `json:"content" gorm:"type:text;not null" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
}

package models

import "time"

// Notification types produced by the event consumer.
const (
	NotificationTypeOrder      = "order"
	NotificationTypeMessage    = "message"
	NotificationTypeModRequest = "modification_request"
	NotificationTypeSystem     = "system"
)

// Notification is an in-app notice for a user. Data carries optional
// structured context (order id, sender id, ...) for client deep-linking.
type Notification struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	UserID    uint              `json:"userId" gorm:"index;not null"`
	User      User              `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title     string            `json:"title" gorm:"type:varchar(255);not null"`
	Message   string            `json:"message" gorm:"type:text"`
	Type      string            `json:"type" gorm:"type:varchar(50);not null"`
	IsRead    bool              `json:"isRead" gorm:"not null;default:false"`
	Data      map[string]string `json:"data,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time         `json:"created_at"`
}

package models

import "time"

// Review is a buyer's rating of a product, 1 to 5 stars.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"productId" gorm:"index;not null"`
	Product   Product   `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	BuyerID   uint      `json:"buyerId" gorm:"index;not null"`
	Buyer     User      `json:"-" gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

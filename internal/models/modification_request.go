package models

import "time"

// Modification request statuses.
const (
	ModRequestStatusPending  = "pending"
	ModRequestStatusAccepted = "accepted"
	ModRequestStatusRejected = "rejected"
)

// ProductModificationRequest is a buyer asking a seller to customize a
// listing (engraving, size change, ...). The seller answers by setting the
// status and an optional response text.
type ProductModificationRequest struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ProductID      uint      `json:"productId" gorm:"index;not null"`
	Product        Product   `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	BuyerID        uint      `json:"buyerId" gorm:"index;not null"`
	Buyer          User      `json:"-" gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	SellerID       uint      `json:"sellerId" gorm:"index;not null"`
	RequestDetails string    `json:"requestDetails" gorm:"type:text;not null" validate:"required"`
	Status         string    `json:"status" gorm:"type:varchar(20);not null;default:pending"`
	SellerResponse *string   `json:"sellerResponse,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

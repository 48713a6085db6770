package models

import "time"

// Order statuses, in their usual lifecycle order.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether status is a known order status.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a buyer's purchase. Items are deleted with the order.
type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	BuyerID     uint        `json:"buyerId" gorm:"index;not null"`
	Buyer       User        `json:"-" gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	TotalAmount float64     `json:"totalAmount" gorm:"not null;default:0;check:total_amount >= 0"`
	Status      string      `json:"status" gorm:"type:varchar(20);not null;default:pending;check:status IN ('pending','processing','shipped','delivered','cancelled')"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is a single line of an order. UnitPrice is the product price at
// the time the order was placed, so later price edits do not rewrite history.
type OrderItem struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	OrderID         uint    `json:"orderId" gorm:"index;not null"`
	ProductID       uint    `json:"productId" gorm:"index;not null"`
	Product         Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity        int     `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice       float64 `json:"unitPrice" gorm:"not null;check:unit_price >= 0"`
	SelectedColor   *string `json:"selectedColor,omitempty" gorm:"type:varchar(50)"`
	SelectedVariant *string `json:"selectedVariant,omitempty" gorm:"type:varchar(50)"`
}

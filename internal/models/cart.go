package models

import "time"

// CartItem is a product a user intends to buy. Removed automatically when
// either the user or the product goes away.
type CartItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"userId" gorm:"index;not null"`
	User            User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProductID       uint      `json:"productId" gorm:"index;not null"`
	Product         Product   `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity        int       `json:"quantity" gorm:"not null;default:1;check:quantity > 0" validate:"required,min=1"`
	SelectedColor   *string   `json:"selectedColor,omitempty" gorm:"type:varchar(50)"`
	SelectedVariant *string   `json:"selectedVariant,omitempty" gorm:"type:varchar(50)"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

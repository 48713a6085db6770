package models

import "time"

// User roles. Sellers list products, buyers purchase them, admins moderate.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents a marketplace account.
// Email and username are globally unique; the password column always holds
// a bcrypt hash, never plaintext.
type User struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Email            string     `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Username         string     `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=3,max=100"`
	Password         string     `json:"password,omitempty" gorm:"type:varchar(255);not null" validate:"required,min=6"`
	Role             string     `json:"role" gorm:"type:varchar(10);not null;default:buyer;check:role IN ('buyer','seller','admin')" validate:"omitempty,oneof=buyer seller admin"`
	Name             string     `json:"name" gorm:"type:varchar(255)"`
	Birthday         *time.Time `json:"birthday,omitempty"`
	StripeCustomerID *string    `json:"stripeCustomerId,omitempty" gorm:"type:varchar(255)"`
	GoogleID         *string    `json:"googleId,omitempty" gorm:"type:varchar(255)"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

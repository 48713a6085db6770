package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	GetByUser(userID uint) ([]models.CartItem, error)
	GetByID(id uint) (*models.CartItem, error)
	Add(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) error
	Remove(id uint) error
	ClearByUser(userID uint) error
}

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetByUser retrieves a user's cart items.
func (r *GORMCartRepository) GetByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %d: %w", userID, err)
	}
	return items, nil
}

// GetByID retrieves a single cart item.
func (r *GORMCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart item with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get cart item %d: %w", id, err)
	}
	return &item, nil
}

// Add puts a new item in the cart.
func (r *GORMCartRepository) Add(item *models.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// UpdateQuantity changes the quantity of an existing cart item.
func (r *GORMCartRepository) UpdateQuantity(id uint, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %d not found for update", id)
	}
	return nil
}

// Remove deletes a cart item.
func (r *GORMCartRepository) Remove(id uint) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %d not found for removal", id)
	}
	return nil
}

// ClearByUser deletes every cart item belonging to a user. Used after
// checkout.
func (r *GORMCartRepository) ClearByUser(userID uint) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %d: %w", userID, err)
	}
	return nil
}

package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CartService handles business logic for shopping carts.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart retrieves the user's cart items.
func (s *CartService) GetCart(userID uint) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(userID)
}

// AddToCart validates the product and stock, then adds the item.
func (s *CartService) AddToCart(item *models.CartItem) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("cart quantity must be positive, got %d", item.Quantity)
	}

	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return fmt.Errorf("product %d not found: %w", item.ProductID, err)
	}
	if product.QuantityAvailable < item.Quantity {
		return fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d)",
			product.Title, item.Quantity, product.QuantityAvailable)
	}

	return s.cartRepo.Add(item)
}

// UpdateQuantity changes the quantity of a cart item the user owns.
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("cart quantity must be positive, got %d", quantity)
	}

	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return fmt.Errorf("cart item %d does not belong to user %d", itemID, userID)
	}

	return s.cartRepo.UpdateQuantity(itemID, quantity)
}

// RemoveFromCart removes a cart item the user owns.
func (s *CartService) RemoveFromCart(userID, itemID uint) error {
	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return fmt.Errorf("cart item %d does not belong to user %d", itemID, userID)
	}

	return s.cartRepo.Remove(itemID)
}

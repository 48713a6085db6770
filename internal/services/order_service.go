package services

import (
	"fmt"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cartRepo    repositories.CartRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, cartRepo repositories.CartRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByBuyer retrieves a buyer's order history.
func (s *OrderService) GetOrdersByBuyer(buyerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByBuyer(buyerID)
}

// CreateOrder creates a new order from the requested items. Unit prices are
// captured from the products at this moment, stock is checked and
// decremented, and an order.created event is published for the buyer's
// notification.
func (s *OrderService) CreateOrder(buyerID uint, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("an order needs at least one item")
	}

	var totalAmount float64
	var processedItems []models.OrderItem
	var updatedProducts []*models.Product

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive, got %d", item.Quantity)
		}

		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d not found: %w", item.ProductID, err)
		}
		if product.QuantityAvailable < item.Quantity {
			return nil, fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d)",
				product.Title, item.Quantity, product.QuantityAvailable)
		}

		product.QuantityAvailable -= item.Quantity
		updatedProducts = append(updatedProducts, product)

		processedItems = append(processedItems, models.OrderItem{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPrice:       product.Price,
			SelectedColor:   item.SelectedColor,
			SelectedVariant: item.SelectedVariant,
		})
		totalAmount += product.Price * float64(item.Quantity)
	}

	newOrder := &models.Order{
		BuyerID:     buyerID,
		Items:       processedItems,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	for _, product := range updatedProducts {
		if err := s.productRepo.Update(product); err != nil {
			log.Printf("Warning: failed to decrement stock for product %d: %v", product.ID, err)
		}
	}

	if err := publishEvent(s.publisher, Event{
		Type:    EventOrderCreated,
		UserID:  buyerID,
		Title:   "Order placed",
		Message: fmt.Sprintf("Your order #%d was placed successfully.", newOrder.ID),
		Data:    map[string]string{"orderId": fmt.Sprint(newOrder.ID)},
	}); err != nil {
		log.Printf("Warning: failed to publish order created event for order %d: %v", newOrder.ID, err)
	}

	return newOrder, nil
}

// CheckoutCart turns the buyer's cart into an order and clears the cart on
// success.
func (s *OrderService) CheckoutCart(buyerID uint) (*models.Order, error) {
	cartItems, err := s.cartRepo.GetByUser(buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		items = append(items, models.OrderItem{
			ProductID:       ci.ProductID,
			Quantity:        ci.Quantity,
			SelectedColor:   ci.SelectedColor,
			SelectedVariant: ci.SelectedVariant,
		})
	}

	order, err := s.CreateOrder(buyerID, items)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearByUser(buyerID); err != nil {
		log.Printf("Warning: failed to clear cart for user %d after checkout: %v", buyerID, err)
	}

	return order, nil
}

// UpdateOrderStatus updates the status of an existing order and publishes a
// status-change event for the buyer.
func (s *OrderService) UpdateOrderStatus(id uint, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %d: %w", id, err)
	}

	if err := publishEvent(s.publisher, Event{
		Type:    EventOrderStatusChanged,
		UserID:  order.BuyerID,
		Title:   "Order updated",
		Message: fmt.Sprintf("Order #%d is now %s.", id, status),
		Data:    map[string]string{"orderId": fmt.Sprint(id), "status": status},
	}); err != nil {
		log.Printf("Warning: failed to publish status change event for order %d: %v", id, err)
	}

	return nil
}

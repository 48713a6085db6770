package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"pasar/internal/models"
)

// ModificationRequestRepository defines the interface for product
// modification request data access.
type ModificationRequestRepository interface {
	Create(request *models.ProductModificationRequest) error
	GetByID(id uint) (*models.ProductModificationRequest, error)
	GetBySeller(sellerID uint) ([]models.ProductModificationRequest, error)
	GetByBuyer(buyerID uint) ([]models.ProductModificationRequest, error)
	Respond(id uint, status string, response string) error
}

// GORMModificationRequestRepository is a GORM implementation of
// ModificationRequestRepository.
type GORMModificationRequestRepository struct {
	db *gorm.DB
}

// NewGORMModificationRequestRepository creates a new instance of
// GORMModificationRequestRepository.
func NewGORMModificationRequestRepository(db *gorm.DB) *GORMModificationRequestRepository {
	return &GORMModificationRequestRepository{db: db}
}

// Create persists a new modification request.
func (r *GORMModificationRequestRepository) Create(request *models.ProductModificationRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create modification request: %w", err)
	}
	return nil
}

// GetByID retrieves a single modification request.
func (r *GORMModificationRequestRepository) GetByID(id uint) (*models.ProductModificationRequest, error) {
	var request models.ProductModificationRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("modification request with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get modification request %d: %w", id, err)
	}
	return &request, nil
}

// GetBySeller retrieves all requests addressed to a seller, newest first.
func (r *GORMModificationRequestRepository) GetBySeller(sellerID uint) ([]models.ProductModificationRequest, error) {
	var requests []models.ProductModificationRequest
	if err := r.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to get modification requests for seller %d: %w", sellerID, err)
	}
	return requests, nil
}

// GetByBuyer retrieves all requests filed by a buyer, newest first.
func (r *GORMModificationRequestRepository) GetByBuyer(buyerID uint) ([]models.ProductModificationRequest, error) {
	var requests []models.ProductModificationRequest
	if err := r.db.Where("buyer_id = ?", buyerID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to get modification requests for buyer %d: %w", buyerID, err)
	}
	return requests, nil
}

// Respond records the seller's answer on a request.
func (r *GORMModificationRequestRepository) Respond(id uint, status string, response string) error {
	res := r.db.Model(&models.ProductModificationRequest{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          status,
			"seller_response": response,
			"updated_at":      time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to respond to modification request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("modification request with ID %d not found", id)
	}
	return nil
}

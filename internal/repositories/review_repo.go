package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByProduct(productID uint) ([]models.Review, error)
	GetByBuyerAndProduct(buyerID, productID uint) (*models.Review, error)
}

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// Create persists a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByProduct retrieves all reviews for a product, newest first.
func (r *GORMReviewRepository) GetByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %d: %w", productID, err)
	}
	return reviews, nil
}

// GetByBuyerAndProduct retrieves the review a buyer left on a product, if any.
func (r *GORMReviewRepository) GetByBuyerAndProduct(buyerID, productID uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "buyer_id = ? AND product_id = ?", buyerID, productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("review by buyer %d on product %d not found", buyerID, productID)
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ReviewService handles business logic related to product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// CreateReview validates and stores a buyer's review. A buyer may review a
// product only once.
func (s *ReviewService) CreateReview(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", review.Rating)
	}
	if _, err := s.productRepo.GetByID(review.ProductID); err != nil {
		return fmt.Errorf("product %d not found: %w", review.ProductID, err)
	}
	if existing, err := s.reviewRepo.GetByBuyerAndProduct(review.BuyerID, review.ProductID); err == nil && existing != nil {
		return fmt.Errorf("buyer %d already reviewed product %d", review.BuyerID, review.ProductID)
	}
	return s.reviewRepo.Create(review)
}

// GetProductReviews retrieves all reviews for a product.
func (s *ReviewService) GetProductReviews(productID uint) ([]models.Review, error) {
	return s.reviewRepo.GetByProduct(productID)
}

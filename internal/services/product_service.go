package services

import (
	"fmt"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsBySeller retrieves a seller's listings.
func (s *ProductService) GetProductsBySeller(sellerID uint) ([]models.Product, error) {
	return s.repo.GetBySeller(sellerID)
}

// CreateProduct validates and creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if product.ImageBinaries == nil {
		product.ImageBinaries = map[string]string{}
	}
	return s.repo.Create(product)
}

// UpdateProduct validates and updates an existing product. The updated_at
// column is set here; the schema does not auto-refresh it.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	product.UpdatedAt = time.Now()
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}

// validateProduct enforces the listing invariants that the check constraints
// also guard, so bad input fails with a readable error before hitting the
// database.
func validateProduct(product *models.Product) error {
	if product.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if product.QuantityAvailable < 0 {
		return fmt.Errorf("product quantity must not be negative")
	}
	if !models.ValidCategory(product.Category) {
		return fmt.Errorf("invalid product category: %s", product.Category)
	}
	return nil
}

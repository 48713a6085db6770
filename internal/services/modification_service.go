package services

import (
	"fmt"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ModificationService handles buyer customization requests on listings.
type ModificationService struct {
	requestRepo repositories.ModificationRequestRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewModificationService creates a new ModificationService.
func NewModificationService(requestRepo repositories.ModificationRequestRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *ModificationService {
	return &ModificationService{
		requestRepo: requestRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateRequest files a modification request against a product. The seller
// is resolved from the product so the client cannot address someone else's
// listing.
func (s *ModificationService) CreateRequest(buyerID, productID uint, details string) (*models.ProductModificationRequest, error) {
	if details == "" {
		return nil, fmt.Errorf("request details must not be empty")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("product %d not found: %w", productID, err)
	}

	request := &models.ProductModificationRequest{
		ProductID:      productID,
		BuyerID:        buyerID,
		SellerID:       product.SellerID,
		RequestDetails: details,
		Status:         models.ModRequestStatusPending,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}

	if err := publishEvent(s.publisher, Event{
		Type:    EventModRequestCreated,
		UserID:  product.SellerID,
		Title:   "Modification request",
		Message: fmt.Sprintf("A buyer requested a modification on %q.", product.Title),
		Data:    map[string]string{"requestId": fmt.Sprint(request.ID), "productId": fmt.Sprint(productID)},
	}); err != nil {
		log.Printf("Warning: failed to publish modification request event: %v", err)
	}

	return request, nil
}

// Respond records the seller's answer and notifies the buyer.
func (s *ModificationService) Respond(sellerID, requestID uint, status, response string) error {
	if status != models.ModRequestStatusAccepted && status != models.ModRequestStatusRejected {
		return fmt.Errorf("invalid response status: %s", status)
	}

	request, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		return err
	}
	if request.SellerID != sellerID {
		return fmt.Errorf("modification request %d is not addressed to seller %d", requestID, sellerID)
	}

	if err := s.requestRepo.Respond(requestID, status, response); err != nil {
		return err
	}

	if err := publishEvent(s.publisher, Event{
		Type:    EventModRequestAnswered,
		UserID:  request.BuyerID,
		Title:   "Request answered",
		Message: fmt.Sprintf("Your modification request was %s.", status),
		Data:    map[string]string{"requestId": fmt.Sprint(requestID), "status": status},
	}); err != nil {
		log.Printf("Warning: failed to publish modification response event: %v", err)
	}

	return nil
}

// GetSellerRequests retrieves requests addressed to a seller.
func (s *ModificationService) GetSellerRequests(sellerID uint) ([]models.ProductModificationRequest, error) {
	return s.requestRepo.GetBySeller(sellerID)
}

// GetBuyerRequests retrieves requests filed by a buyer.
func (s *ModificationService) GetBuyerRequests(buyerID uint) ([]models.ProductModificationRequest, error) {
	return s.requestRepo.GetByBuyer(buyerID)
}

package handlers

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes. Listing is public; writing a
// review requires authentication and is registered separately.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products/:id/reviews", h.HandleGetProductReviews)
}

// RegisterAuthedRoutes registers routes that need the auth middleware.
func (h *ReviewHandler) RegisterAuthedRoutes(router fiber.Router) {
	router.Post("/products/:id/reviews", h.HandleCreateReview)
}

// HandleGetProductReviews retrieves all reviews for a product.
func (h *ReviewHandler) HandleGetProductReviews(c *fiber.Ctx) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	reviews, err := h.service.GetProductReviews(productID)
	if err != nil {
		log.Printf("Error getting reviews for product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleCreateReview stores the authenticated buyer's review of a product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing review body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	review.ProductID = productID
	review.BuyerID = middleware.UserID(c)

	if err := h.validate.Struct(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateReview(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		if strings.Contains(err.Error(), "already reviewed") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Review already exists",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

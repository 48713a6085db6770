package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/middleware"
	"pasar/internal/services"
)

// ModificationHandler handles HTTP requests for product modification
// requests.
type ModificationHandler struct {
	service *services.ModificationService
}

// NewModificationHandler creates a new ModificationHandler.
func NewModificationHandler(service *services.ModificationService) *ModificationHandler {
	return &ModificationHandler{service: service}
}

// RegisterRoutes registers the modification request routes with the Fiber app.
func (h *ModificationHandler) RegisterRoutes(router fiber.Router) {
	modRoutes := router.Group("/modification-requests")
	modRoutes.Post("/", h.HandleCreateRequest)
	modRoutes.Get("/sent", h.HandleGetBuyerRequests)
	modRoutes.Get("/received", h.HandleGetSellerRequests)
	modRoutes.Patch("/:id", h.HandleRespond)
}

// CreateModificationRequest is the body for filing a request.
type CreateModificationRequest struct {
	ProductID      uint   `json:"productId"`
	RequestDetails string `json:"requestDetails"`
}

// HandleCreateRequest files a modification request from the authenticated
// buyer.
func (h *ModificationHandler) HandleCreateRequest(c *fiber.Ctx) error {
	var req CreateModificationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing modification request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	request, err := h.service.CreateRequest(middleware.UserID(c), req.ProductID, req.RequestDetails)
	if err != nil {
		log.Printf("Error creating modification request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create modification request",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// HandleGetBuyerRequests lists requests the authenticated user filed.
func (h *ModificationHandler) HandleGetBuyerRequests(c *fiber.Ctx) error {
	requests, err := h.service.GetBuyerRequests(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting buyer modification requests: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve modification requests",
			"error":   err.Error(),
		})
	}
	return c.JSON(requests)
}

// HandleGetSellerRequests lists requests addressed to the authenticated
// seller.
func (h *ModificationHandler) HandleGetSellerRequests(c *fiber.Ctx) error {
	requests, err := h.service.GetSellerRequests(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting seller modification requests: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve modification requests",
			"error":   err.Error(),
		})
	}
	return c.JSON(requests)
}

// RespondRequest is the body for a seller's answer.
type RespondRequest struct {
	Status         string `json:"status"`
	SellerResponse string `json:"sellerResponse"`
}

// HandleRespond records the authenticated seller's answer on a request.
func (h *ModificationHandler) HandleRespond(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.Respond(middleware.UserID(c), id, req.Status, req.SellerResponse); err != nil {
		log.Printf("Error responding to modification request %d: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Modification request not found",
			})
		}
		if strings.Contains(err.Error(), "not addressed to") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "This request is addressed to another seller",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not respond to modification request",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Response recorded"})
}

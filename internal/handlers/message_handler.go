package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/middleware"
	"pasar/internal/services"
)

// MessageHandler handles HTTP requests for direct messages.
type MessageHandler struct {
	service *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// RegisterRoutes registers the message routes with the Fiber app.
func (h *MessageHandler) RegisterRoutes(router fiber.Router) {
	messageRoutes := router.Group("/messages")
	messageRoutes.Post("/", h.HandleSendMessage)
	messageRoutes.Get("/:userId", h.HandleGetConversation)
}

// SendMessageRequest is the body for sending a direct message.
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId"`
	Content    string `json:"content"`
}

// HandleSendMessage sends a message from the authenticated user.
func (h *MessageHandler) HandleSendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing message body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	message, err := h.service.SendMessage(middleware.UserID(c), req.ReceiverID, req.Content)
	if err != nil {
		log.Printf("Error sending message: %v", err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "must not be empty") ||
			strings.Contains(err.Error(), "yourself") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not send message",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not send message",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// HandleGetConversation retrieves the conversation between the authenticated
// user and the user named in the path.
func (h *MessageHandler) HandleGetConversation(c *fiber.Ctx) error {
	otherID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "userId must be a positive integer",
		})
	}

	messages, err := h.service.GetConversation(middleware.UserID(c), uint(otherID))
	if err != nil {
		log.Printf("Error getting conversation: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve conversation",
			"error":   err.Error(),
		})
	}
	return c.JSON(messages)
}

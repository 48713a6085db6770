package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/middleware"
	"pasar/internal/services"
)

// NotificationHandler handles HTTP requests for the authenticated user's
// notifications.
type NotificationHandler struct {
	service *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// RegisterRoutes registers the notification routes with the Fiber app.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Get("/", h.HandleGetNotifications)
	notificationRoutes.Patch("/read-all", h.HandleMarkAllRead)
	notificationRoutes.Patch("/:id/read", h.HandleMarkRead)
}

// HandleGetNotifications retrieves the user's notifications.
func (h *NotificationHandler) HandleGetNotifications(c *fiber.Ctx) error {
	notifications, err := h.service.GetNotifications(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting notifications: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve notifications",
			"error":   err.Error(),
		})
	}
	return c.JSON(notifications)
}

// HandleMarkRead marks a single notification as read.
func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.MarkRead(id); err != nil {
		log.Printf("Error marking notification %d read: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Notification not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not mark notification read",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Notification marked read"})
}

// HandleMarkAllRead marks every notification for the user as read.
func (h *NotificationHandler) HandleMarkAllRead(c *fiber.Ctx) error {
	if err := h.service.MarkAllRead(middleware.UserID(c)); err != nil {
		log.Printf("Error marking notifications read: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not mark notifications read",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "All notifications marked read"})
}

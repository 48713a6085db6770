package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadHandler stores product images and returns both a URL and the base64
// payload, so the form can render a preview without a second fetch.
type UploadHandler struct {
	uploadDir  string
	publicPath string
}

// NewUploadHandler creates an UploadHandler writing files to uploadDir and
// addressing them under publicPath (e.g. "/uploads").
func NewUploadHandler(uploadDir, publicPath string) *UploadHandler {
	return &UploadHandler{
		uploadDir:  uploadDir,
		publicPath: strings.TrimRight(publicPath, "/"),
	}
}

// RegisterRoutes registers the upload route with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload", h.HandleUpload)
}

// HandleUpload accepts a multipart "image" field, rejects non-image MIME
// types, and stores the file under a uuid name. Files removed from a form
// later are not deleted here; orphans are accepted.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "multipart field 'image' is required",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("file type %q is not an image", contentType),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "failed to open uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "failed to read uploaded file",
		})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "failed to prepare upload directory",
		})
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	if err := os.WriteFile(filepath.Join(h.uploadDir, name), data, 0o644); err != nil {
		log.Printf("Error writing uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "failed to store uploaded file",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"imageUrl":  h.publicPath + "/" + name,
		"imageData": base64.StdEncoding.EncodeToString(data),
	})
}

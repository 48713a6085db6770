package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"pasar/internal/models"
	"pasar/internal/productform"
	"pasar/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Post("/import", h.HandleImportProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)

	router.Get("/sellers/:id/products", h.HandleGetSellerProducts)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		log.Printf("Error getting product by ID %d: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleGetSellerProducts retrieves all products listed by a seller.
func (h *ProductHandler) HandleGetSellerProducts(c *fiber.Ctx) error {
	sellerID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	products, err := h.service.GetProductsBySeller(sellerID)
	if err != nil {
		log.Printf("Error getting products for seller %d: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve seller products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a new product from a form payload.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var payload productform.Payload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing product payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product := models.Product{}
	if err := applyPayload(&product, payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product payload",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product from a form payload.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var payload productform.Payload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing product payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}

	if err := applyPayload(product, payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product payload",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateProduct(product); err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %d deleted", id),
	})
}

// HandleImportProducts bulk-creates listings for a seller from an uploaded
// Excel sheet. Expected columns: title, category, price, quantity,
// description; the first row is a header.
func (h *ProductHandler) HandleImportProducts(c *fiber.Ctx) error {
	sellerIDStr := c.FormValue("seller_id")
	sellerID, err := strconv.ParseUint(sellerIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "seller_id must be a valid integer form field",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "File is required",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to open file",
			"error":   err.Error(),
		})
	}
	defer f.Close()

	xlsx, err := excelize.OpenReader(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid Excel file",
			"error":   err.Error(),
		})
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to read sheet",
			"error":   err.Error(),
		})
	}

	imported, skipped := 0, 0
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 5 {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			skipped++
			continue
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			skipped++
			continue
		}

		product := models.Product{
			SellerID:          uint(sellerID),
			Title:             row[0],
			Category:          row[1],
			Price:             price,
			QuantityAvailable: quantity,
			Description:       row[4],
			ImageBinaries:     map[string]string{},
		}
		if err := h.service.CreateProduct(&product); err != nil {
			log.Printf("Import error on row %d: %v", i, err)
			skipped++
			continue
		}
		imported++
	}

	return c.JSON(fiber.Map{
		"message":  "Import finished",
		"imported": imported,
		"skipped":  skipped,
	})
}

// applyPayload copies a form payload onto a product, parsing the stringly
// typed fields. The price arrives as the raw string the form collected.
func applyPayload(product *models.Product, payload productform.Payload) error {
	price, err := strconv.ParseFloat(strings.TrimSpace(payload.Price), 64)
	if err != nil {
		return fmt.Errorf("price %q is not a number", payload.Price)
	}
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if payload.QuantityAvailable < 0 {
		return fmt.Errorf("quantityAvailable must not be negative")
	}

	binaries := map[string]string{}
	if payload.ImageBinaries != "" {
		if err := json.Unmarshal([]byte(payload.ImageBinaries), &binaries); err != nil {
			return fmt.Errorf("imageBinaries is not valid JSON: %w", err)
		}
	}

	product.SellerID = payload.SellerID
	product.Title = payload.Title
	product.Description = payload.Description
	product.Price = price
	product.QuantityAvailable = payload.QuantityAvailable
	product.Category = payload.Category
	product.Images = payload.Images
	product.ImageBinaries = binaries
	return nil
}

// parseIDParam reads the :id route parameter as an unsigned integer.
// Callers answer 400 with the returned message themselves.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return uint(id), nil
}

package handler

import (
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetProducts lists the catalog; with ?outlet_id= (or the hub code) the
// rows carry that location's live stock.
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	locationCode := c.Query("outlet_id")
	if locationCode == "" {
		products, err := h.service.ListProducts()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return c.JSON(products)
	}

	rows, err := h.service.ListCatalog(locationCode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product, getActor(c)); err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

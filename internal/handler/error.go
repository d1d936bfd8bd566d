package handler

import (
	"errors"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Helper untuk ambil actor dari header (no auth layer in this service)
func getActor(c *fiber.Ctx) string {
	actor := c.Get("X-Actor")
	if actor == "" {
		return "system"
	}
	return actor
}

// writeError maps service errors onto HTTP statuses. Insufficient-stock
// rejections carry the offending entry so the client can render an
// actionable message.
func writeError(c *fiber.Ctx, err error) error {
	var insufficient *ledger.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     err.Error(),
			"sku":       insufficient.SKU,
			"location":  insufficient.Location,
			"requested": insufficient.Requested,
			"available": insufficient.Available,
		})
	}

	switch {
	case errors.Is(err, service.ErrOutletNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrRequestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
}

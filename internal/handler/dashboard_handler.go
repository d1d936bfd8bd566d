package handler

import (
	"go-hubstock-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboard returns the full operational overview: hub stock,
// per-outlet summaries with status, and the aggregate counters.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.service.GetDashboard()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard"})
	}
	return c.JSON(data)
}

package handler

import (
	"time"

	"go-hubstock-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetReport returns per-day, per-outlet sales aggregates.
// Query params: range (7d|1m|3m|6m|12m, default 7d), outlet_id (optional)
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	rangeParam := c.Query("range", "7d")
	startDate, endDate := service.ReportWindow(rangeParam, time.Now())

	rows, err := h.service.GetReportRows(c.Query("outlet_id"), startDate, endDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"range": rangeParam,
		"data":  rows,
	})
}

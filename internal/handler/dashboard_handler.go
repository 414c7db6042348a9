package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetCharts returns the three dashboard datasets. A failed aggregate shows
// as an empty chart; this endpoint itself never fails on upstream errors.
// GET /api/v1/dashboard/charts
func (h *DashboardHandler) GetCharts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Charts(c.UserContext())})
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-sales-console/internal/service"
	"go-sales-console/internal/ws"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	hub              *ws.Hub
}

func NewDashboardHandler(ds service.DashboardService, hub *ws.Hub) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds, hub: hub}
}

func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	daily, err := h.dashboardService.GetSalesLast7Days(c.Context())
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load sales chart data.")
	}
	monthly, err := h.dashboardService.GetMonthlyRevenue(c.Context())
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load revenue chart data.")
	}

	// A failed series renders as its empty state; the dashboard itself
	// still loads.
	return c.Render("dashboard", fiber.Map{
		"Title":          "Dashboard",
		"DailySales":     daily,
		"MonthlyRevenue": monthly,
	}, "layout")
}

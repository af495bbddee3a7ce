package handlers

import (
	"checkout/internal/services/dashboard"
	"checkout/internal/utils/format"
	"checkout/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetMerchantStats returns revenue and conversion figures, optionally
// narrowed to one merchant with ?merchant_id=.
func (h *DashboardHandler) GetMerchantStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.MerchantStats(c.Context(), c.Query("merchant_id"))
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Dashboard data retrieved successfully", fiber.Map{
		"stats":                  stats,
		"formatted_revenue":      format.FormatCurrency(stats.TotalRevenue, "USD"),
		"formatted_average":      format.FormatCurrency(stats.AverageOrderValue, "USD"),
		"formatted_success_rate": stats.ConversionRate.StringFixed(1) + "%",
	})
}

func (h *DashboardHandler) GetRecentTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	txs, err := h.dashboardService.RecentTransactions(c.Context(), limit)
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Recent transactions retrieved successfully", txs)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/services"
	"github.com/techneurology/neurorelief/internal/utils"
)

// AnalyticsHandler handles dashboard aggregate routes
type AnalyticsHandler struct {
	Analytics *services.AnalyticsService
}

// GetWeeklyStats handles GET /api/analytics/weekly
// @Summary Get weekly stats
// @Description Trailing-7-day episode and medication aggregates for the dashboard
// @Tags Analytics
// @Produce json
// @Success 200 {object} services.WeeklyStats
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /analytics/weekly [get]
func (h *AnalyticsHandler) GetWeeklyStats(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch weekly stats", err)
	}

	stats, err := h.Analytics.WeeklyStats(user.ID)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch weekly stats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

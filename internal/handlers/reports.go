package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/schemas"
	"github.com/techneurology/neurorelief/internal/services"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/utils"
)

// ReportHandler handles clinical report routes
type ReportHandler struct {
	Store   *storage.Store
	Reports *services.ReportService
}

// GenerateReport handles POST /api/reports/generate
// @Summary Generate a clinical report
// @Description Assemble and persist a summary report over a date range
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body schemas.GenerateReportInput true "Report parameters"
// @Success 200 {object} models.MedicalReport
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /reports/generate [post]
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to generate report", err)
	}

	var input schemas.GenerateReportInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to generate report")
	}

	req, err := input.Validate()
	if err != nil {
		return respondError(c, err, "", "Failed to generate report")
	}

	report, err := h.Reports.Generate(user.ID, req)
	if err != nil {
		return respondError(c, err, "", "Failed to generate report")
	}
	return utils.SuccessResponse(c, report, fiber.StatusOK)
}

// GetReports handles GET /api/reports
// @Summary List generated reports
// @Description List the authenticated user's reports, most recent first
// @Tags Reports
// @Produce json
// @Success 200 {array} models.MedicalReport
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /reports [get]
func (h *ReportHandler) GetReports(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch reports", err)
	}

	reports, err := h.Store.GetMedicalReports(user.ID)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch reports")
	}
	return utils.SuccessResponse(c, reports, fiber.StatusOK)
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/schemas"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/utils"
)

// MedicationLogHandler handles medication intake routes
type MedicationLogHandler struct {
	Store *storage.Store
}

// CreateMedicationLog handles POST /api/medication-logs
// @Summary Record a medication intake
// @Description Log a dose for the authenticated user
// @Tags MedicationLogs
// @Accept json
// @Produce json
// @Param log body schemas.MedicationLogInput true "Intake fields"
// @Success 201 {object} models.MedicationLog
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medication-logs [post]
func (h *MedicationLogHandler) CreateMedicationLog(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to create medication log", err)
	}

	var input schemas.MedicationLogInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to create medication log")
	}

	entry, err := input.ValidateCreate(user.ID, time.Now())
	if err != nil {
		return respondError(c, err, "", "Failed to create medication log")
	}

	created, err := h.Store.CreateMedicationLog(entry)
	if err != nil {
		return respondError(c, err, "", "Failed to create medication log")
	}
	return utils.SuccessResponse(c, created, fiber.StatusCreated)
}

// GetMedicationLogs handles GET /api/medication-logs
// @Summary List medication intakes
// @Description List the authenticated user's intake records, most recent first
// @Tags MedicationLogs
// @Produce json
// @Param limit query int false "Maximum rows to return (default 50)"
// @Success 200 {array} models.MedicationLog
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medication-logs [get]
func (h *MedicationLogHandler) GetMedicationLogs(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch medication logs", err)
	}

	logs, err := h.Store.GetMedicationLogs(user.ID, parseLimit(c))
	if err != nil {
		return respondError(c, err, "", "Failed to fetch medication logs")
	}
	return utils.SuccessResponse(c, logs, fiber.StatusOK)
}

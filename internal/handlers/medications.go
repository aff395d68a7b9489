package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/schemas"
	"github.com/techneurology/neurorelief/internal/services"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/utils"
)

// MedicationHandler handles medication catalog routes
type MedicationHandler struct {
	Store     *storage.Store
	Analytics *services.AnalyticsService
}

// CreateMedication handles POST /api/medications
// @Summary Add a medication
// @Description Add a medication to the authenticated user's catalog
// @Tags Medications
// @Accept json
// @Produce json
// @Param medication body schemas.MedicationInput true "Medication fields"
// @Success 201 {object} models.Medication
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medications [post]
func (h *MedicationHandler) CreateMedication(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to create medication", err)
	}

	var input schemas.MedicationInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to create medication")
	}

	medication, err := input.ValidateCreate(user.ID)
	if err != nil {
		return respondError(c, err, "", "Failed to create medication")
	}

	created, err := h.Store.CreateMedication(medication)
	if err != nil {
		return respondError(c, err, "", "Failed to create medication")
	}
	return utils.SuccessResponse(c, created, fiber.StatusCreated)
}

// GetMedications handles GET /api/medications
// @Summary List active medications
// @Description List the authenticated user's active medications
// @Tags Medications
// @Produce json
// @Success 200 {array} models.Medication
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medications [get]
func (h *MedicationHandler) GetMedications(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch medications", err)
	}

	medications, err := h.Store.GetMedications(user.ID)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch medications")
	}
	return utils.SuccessResponse(c, medications, fiber.StatusOK)
}

// UpdateMedication handles PATCH /api/medications/:id
// @Summary Update a medication
// @Description Apply a partial update; setting isActive=false retires the medication
// @Tags Medications
// @Accept json
// @Produce json
// @Param id path int true "Medication ID"
// @Param medication body schemas.MedicationInput true "Fields to change"
// @Success 200 {object} models.Medication
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 404 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medications/{id} [patch]
func (h *MedicationHandler) UpdateMedication(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to update medication", err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "", "Failed to update medication")
	}

	var input schemas.MedicationInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to update medication")
	}

	updates, err := input.ValidateUpdate()
	if err != nil {
		return respondError(c, err, "", "Failed to update medication")
	}

	updated, err := h.Store.UpdateMedication(user.ID, id, updates)
	if err != nil {
		return respondError(c, err, "Medication not found", "Failed to update medication")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// GetMedicationEffectiveness handles GET /api/medications/:id/effectiveness
// @Summary Get medication effectiveness
// @Description Mean effectiveness rating across the medication's logs, scaled 0-100
// @Tags Medications
// @Produce json
// @Param id path int true "Medication ID"
// @Success 200 {object} map[string]int
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medications/{id}/effectiveness [get]
func (h *MedicationHandler) GetMedicationEffectiveness(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch medication effectiveness", err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "", "Failed to fetch medication effectiveness")
	}

	effectiveness, err := h.Analytics.MedicationEffectiveness(user.ID, id)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch medication effectiveness")
	}
	return utils.SuccessResponse(c, fiber.Map{"effectiveness": effectiveness}, fiber.StatusOK)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/schemas"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/utils"
)

// TriggerHandler handles trigger catalog routes
type TriggerHandler struct {
	Store *storage.Store
}

// CreateTrigger handles POST /api/triggers
// @Summary Record a trigger
// @Description Add a trigger to the authenticated user's catalog
// @Tags Triggers
// @Accept json
// @Produce json
// @Param trigger body schemas.TriggerInput true "Trigger fields"
// @Success 201 {object} models.Trigger
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /triggers [post]
func (h *TriggerHandler) CreateTrigger(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to create trigger", err)
	}

	var input schemas.TriggerInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to create trigger")
	}

	trigger, err := input.ValidateCreate(user.ID)
	if err != nil {
		return respondError(c, err, "", "Failed to create trigger")
	}

	created, err := h.Store.CreateTrigger(trigger)
	if err != nil {
		return respondError(c, err, "", "Failed to create trigger")
	}
	return utils.SuccessResponse(c, created, fiber.StatusCreated)
}

// GetTriggers handles GET /api/triggers
// @Summary List triggers
// @Description List the authenticated user's triggers, strongest correlation first
// @Tags Triggers
// @Produce json
// @Success 200 {array} models.Trigger
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /triggers [get]
func (h *TriggerHandler) GetTriggers(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch triggers", err)
	}

	triggers, err := h.Store.GetTriggers(user.ID)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch triggers")
	}
	return utils.SuccessResponse(c, triggers, fiber.StatusOK)
}

// UpdateTriggerCorrelation handles PATCH /api/triggers/:id/correlation
// @Summary Update a trigger's correlation score
// @Description Store an externally computed correlation score for one trigger
// @Tags Triggers
// @Accept json
// @Produce json
// @Param id path int true "Trigger ID"
// @Param correlation body schemas.CorrelationInput true "New score"
// @Success 200 {object} models.Trigger
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 404 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /triggers/{id}/correlation [patch]
func (h *TriggerHandler) UpdateTriggerCorrelation(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to update trigger", err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "", "Failed to update trigger")
	}

	var input schemas.CorrelationInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to update trigger")
	}

	score, err := input.Validate()
	if err != nil {
		return respondError(c, err, "", "Failed to update trigger")
	}

	updated, err := h.Store.UpdateTriggerCorrelation(user.ID, id, score)
	if err != nil {
		return respondError(c, err, "Trigger not found", "Failed to update trigger")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

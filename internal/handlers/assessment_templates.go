package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/schemas"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/utils"
)

// AssessmentTemplateHandler handles structured assessment template routes
type AssessmentTemplateHandler struct {
	Store *storage.Store
}

// CreateAssessmentTemplate handles POST /api/assessment-templates
// @Summary Create an assessment template
// @Description Store a structured assessment question set for the authenticated user
// @Tags AssessmentTemplates
// @Accept json
// @Produce json
// @Param template body schemas.AssessmentTemplateInput true "Template fields"
// @Success 201 {object} models.AssessmentTemplate
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /assessment-templates [post]
func (h *AssessmentTemplateHandler) CreateAssessmentTemplate(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to create assessment template", err)
	}

	var input schemas.AssessmentTemplateInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to create assessment template")
	}

	template, err := input.ValidateCreate(user.ID)
	if err != nil {
		return respondError(c, err, "", "Failed to create assessment template")
	}

	created, err := h.Store.CreateAssessmentTemplate(template)
	if err != nil {
		return respondError(c, err, "", "Failed to create assessment template")
	}
	return utils.SuccessResponse(c, created, fiber.StatusCreated)
}

// GetAssessmentTemplates handles GET /api/assessment-templates
// @Summary List assessment templates
// @Description List the authenticated user's active templates
// @Tags AssessmentTemplates
// @Produce json
// @Success 200 {array} models.AssessmentTemplate
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /assessment-templates [get]
func (h *AssessmentTemplateHandler) GetAssessmentTemplates(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch assessment templates", err)
	}

	templates, err := h.Store.GetAssessmentTemplates(user.ID)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch assessment templates")
	}
	return utils.SuccessResponse(c, templates, fiber.StatusOK)
}

// UpdateAssessmentTemplate handles PATCH /api/assessment-templates/:id
// @Summary Update an assessment template
// @Description Apply a partial update to one template
// @Tags AssessmentTemplates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param template body schemas.AssessmentTemplateInput true "Fields to change"
// @Success 200 {object} models.AssessmentTemplate
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 404 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /assessment-templates/{id} [patch]
func (h *AssessmentTemplateHandler) UpdateAssessmentTemplate(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to update assessment template", err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "", "Failed to update assessment template")
	}

	var input schemas.AssessmentTemplateInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to update assessment template")
	}

	updates, err := input.ValidateUpdate()
	if err != nil {
		return respondError(c, err, "", "Failed to update assessment template")
	}

	updated, err := h.Store.UpdateAssessmentTemplate(user.ID, id, updates)
	if err != nil {
		return respondError(c, err, "Assessment template not found", "Failed to update assessment template")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// DeleteAssessmentTemplate handles DELETE /api/assessment-templates/:id
// @Summary Delete an assessment template
// @Description Remove one template owned by the authenticated user
// @Tags AssessmentTemplates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.ErrorMessage
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 404 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /assessment-templates/{id} [delete]
func (h *AssessmentTemplateHandler) DeleteAssessmentTemplate(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to delete assessment template", err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "", "Failed to delete assessment template")
	}

	if err := h.Store.DeleteAssessmentTemplate(user.ID, id); err != nil {
		return respondError(c, err, "Assessment template not found", "Failed to delete assessment template")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Assessment template deleted successfully"}, fiber.StatusOK)
}

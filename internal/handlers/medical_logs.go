// medical_logs.go
//
// NeuroRelief migraine tracking API service
// Copyright (c) 2026 TechNeurology
//
// This file is part of neurorelief.
// neurorelief is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// neurorelief is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with neurorelief.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/schemas"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/types"
	"github.com/techneurology/neurorelief/internal/utils"
)

// MedicalLogHandler handles structured clinical log routes
type MedicalLogHandler struct {
	Store *storage.Store
}

// CreateMedicalLog handles POST /api/medical-logs
// @Summary Create a medical log
// @Description Record a structured clinical note for the authenticated user
// @Tags MedicalLogs
// @Accept json
// @Produce json
// @Param log body schemas.MedicalLogInput true "Medical log fields"
// @Success 201 {object} models.MedicalLog
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medical-logs [post]
func (h *MedicalLogHandler) CreateMedicalLog(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to create medical log", err)
	}

	var input schemas.MedicalLogInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to create medical log")
	}

	entry, err := input.ValidateCreate(user.ID, time.Now())
	if err != nil {
		return respondError(c, err, "", "Failed to create medical log")
	}

	created, err := h.Store.CreateMedicalLog(entry)
	if err != nil {
		return respondError(c, err, "", "Failed to create medical log")
	}
	return utils.SuccessResponse(c, created, fiber.StatusCreated)
}

// GetMedicalLogs handles GET /api/medical-logs
// @Summary List medical logs
// @Description List the authenticated user's clinical notes, most recent first
// @Tags MedicalLogs
// @Produce json
// @Param limit query int false "Maximum rows to return (default 50)"
// @Success 200 {array} models.MedicalLog
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medical-logs [get]
func (h *MedicalLogHandler) GetMedicalLogs(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch medical logs", err)
	}

	logs, err := h.Store.GetMedicalLogs(user.ID, parseLimit(c))
	if err != nil {
		return respondError(c, err, "", "Failed to fetch medical logs")
	}
	return utils.SuccessResponse(c, logs, fiber.StatusOK)
}

// GetMedicalLogsByEpisode handles GET /api/medical-logs/episode/:episodeId
// @Summary List medical logs for an episode
// @Description List clinical notes attached to one episode
// @Tags MedicalLogs
// @Produce json
// @Param episodeId path int true "Episode ID"
// @Success 200 {array} models.MedicalLog
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medical-logs/episode/{episodeId} [get]
func (h *MedicalLogHandler) GetMedicalLogsByEpisode(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch medical logs", err)
	}

	episodeID, err := parseID(c, "episodeId")
	if err != nil {
		return respondError(c, err, "", "Failed to fetch medical logs")
	}

	logs, err := h.Store.GetMedicalLogsByEpisode(user.ID, episodeID)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch medical logs")
	}
	return utils.SuccessResponse(c, logs, fiber.StatusOK)
}

// GetMedicalLogsByType handles GET /api/medical-logs/type/:logType
// @Summary List medical logs of one type
// @Description List clinical notes filtered by log type
// @Tags MedicalLogs
// @Produce json
// @Param logType path string true "Log type" Enums(assessment, vitals, symptoms, medication_effect, treatment)
// @Success 200 {array} models.MedicalLog
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medical-logs/type/{logType} [get]
func (h *MedicalLogHandler) GetMedicalLogsByType(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch medical logs", err)
	}

	logType := c.Params("logType")
	if !models.ValidLogType(logType) {
		return respondError(c, types.Validationf("logType %q is not a known log type", logType), "", "Failed to fetch medical logs")
	}

	logs, err := h.Store.GetMedicalLogsByType(user.ID, logType)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch medical logs")
	}
	return utils.SuccessResponse(c, logs, fiber.StatusOK)
}

// UpdateMedicalLog handles PATCH /api/medical-logs/:id
// @Summary Update a medical log
// @Description Apply a partial update to one clinical note
// @Tags MedicalLogs
// @Accept json
// @Produce json
// @Param id path int true "Medical log ID"
// @Param log body schemas.MedicalLogInput true "Fields to change"
// @Success 200 {object} models.MedicalLog
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 404 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medical-logs/{id} [patch]
func (h *MedicalLogHandler) UpdateMedicalLog(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to update medical log", err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "", "Failed to update medical log")
	}

	var input schemas.MedicalLogInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to update medical log")
	}

	updates, err := input.ValidateUpdate()
	if err != nil {
		return respondError(c, err, "", "Failed to update medical log")
	}

	updated, err := h.Store.UpdateMedicalLog(user.ID, id, updates)
	if err != nil {
		return respondError(c, err, "Medical log not found", "Failed to update medical log")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// DeleteMedicalLog handles DELETE /api/medical-logs/:id
// @Summary Delete a medical log
// @Description Remove one clinical note owned by the authenticated user
// @Tags MedicalLogs
// @Produce json
// @Param id path int true "Medical log ID"
// @Success 200 {object} utils.ErrorMessage
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 404 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /medical-logs/{id} [delete]
func (h *MedicalLogHandler) DeleteMedicalLog(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to delete medical log", err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "", "Failed to delete medical log")
	}

	if err := h.Store.DeleteMedicalLog(user.ID, id); err != nil {
		return respondError(c, err, "Medical log not found", "Failed to delete medical log")
	}
	return utils.SuccessResponse(c, fiber.Map{"message": "Medical log deleted successfully"}, fiber.StatusOK)
}

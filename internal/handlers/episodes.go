package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/schemas"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/utils"
)

// EpisodeHandler handles migraine episode routes
type EpisodeHandler struct {
	Store *storage.Store
}

// CreateEpisode handles POST /api/episodes
// @Summary Record a migraine episode
// @Description Create a new episode for the authenticated user
// @Tags Episodes
// @Accept json
// @Produce json
// @Param episode body schemas.EpisodeInput true "Episode fields"
// @Success 201 {object} models.Episode
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /episodes [post]
func (h *EpisodeHandler) CreateEpisode(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to create episode", err)
	}

	var input schemas.EpisodeInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to create episode")
	}

	episode, err := input.ValidateCreate(user.ID, time.Now())
	if err != nil {
		return respondError(c, err, "", "Failed to create episode")
	}

	created, err := h.Store.CreateEpisode(episode)
	if err != nil {
		return respondError(c, err, "", "Failed to create episode")
	}
	return utils.SuccessResponse(c, created, fiber.StatusCreated)
}

// GetEpisodes handles GET /api/episodes
// @Summary List migraine episodes
// @Description List the authenticated user's episodes, most recent first
// @Tags Episodes
// @Produce json
// @Param limit query int false "Maximum rows to return (default 50)"
// @Success 200 {array} models.Episode
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /episodes [get]
func (h *EpisodeHandler) GetEpisodes(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch episodes", err)
	}

	episodes, err := h.Store.GetEpisodes(user.ID, parseLimit(c))
	if err != nil {
		return respondError(c, err, "", "Failed to fetch episodes")
	}
	return utils.SuccessResponse(c, episodes, fiber.StatusOK)
}

// UpdateEpisode handles PATCH /api/episodes/:id
// @Summary Update a migraine episode
// @Description Apply a partial update, typically to set the end time
// @Tags Episodes
// @Accept json
// @Produce json
// @Param id path int true "Episode ID"
// @Param episode body schemas.EpisodeInput true "Fields to change"
// @Success 200 {object} models.Episode
// @Failure 400 {object} utils.ErrorMessage
// @Failure 403 {object} utils.ErrorMessage
// @Failure 404 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /episodes/{id} [patch]
func (h *EpisodeHandler) UpdateEpisode(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to update episode", err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "", "Failed to update episode")
	}

	var input schemas.EpisodeInput
	if err := decodeBody(c, &input); err != nil {
		return respondError(c, err, "", "Failed to update episode")
	}

	existing, err := h.Store.GetEpisode(user.ID, id)
	if err != nil {
		return respondError(c, err, "Episode not found", "Failed to update episode")
	}

	updates, err := input.ValidateUpdate(existing)
	if err != nil {
		return respondError(c, err, "Episode not found", "Failed to update episode")
	}

	updated, err := h.Store.UpdateEpisode(user.ID, id, updates)
	if err != nil {
		return respondError(c, err, "Episode not found", "Failed to update episode")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

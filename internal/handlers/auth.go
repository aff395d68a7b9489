package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/utils"
)

// AuthHandler handles the authenticated user profile route
type AuthHandler struct {
	Store *storage.Store
}

// GetCurrentUser handles GET /api/auth/user
// @Summary Get current user
// @Description Get the authenticated user's profile, creating or refreshing it from the session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 403 {object} utils.ErrorMessage
// @Failure 500 {object} utils.ErrorMessage
// @Router /auth/user [get]
func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	session, err := sessionUser(c)
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch user", err)
	}

	// Keep the profile row current with the identity provider on every
	// visit; first contact creates it.
	user, err := h.Store.UpsertUser(&models.User{
		ID:              session.ID,
		Email:           session.Email,
		FirstName:       session.GivenName,
		LastName:        session.FamilyName,
		ProfileImageURL: session.Picture,
	})
	if err != nil {
		return utils.InternalErrorResponse(c, "Failed to fetch user", err)
	}

	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

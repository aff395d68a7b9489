package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/config"
	"github.com/techneurology/neurorelief/internal/services"
	"github.com/techneurology/neurorelief/internal/types"
)

// UserLocalsKey is where the authenticated session user lands in the
// request context.
const UserLocalsKey = "sessionUser"

// AuthUser validates that the request carries a valid user session.
// The Authorizer client is initialized on the first authenticated request
// because its redirect URL depends on the request host.
func AuthUser(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Cookies("cookie_session")
		if session == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Authorizer cookie \"cookie_session\" not found",
				Type:    "auth.session.missing",
			}
		}

		if !services.IsAuthorizerInitialized() {
			if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
				return &types.CustomError{
					Code:    fiber.StatusForbidden,
					Message: fmt.Sprintf("Authorizer unavailable: %v", err),
					Type:    "auth.init",
				}
			}
		}

		user, err := services.ValidateSession(session, []string{"user"})
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    "auth.session.invalid",
			}
		}

		c.Locals(UserLocalsKey, user)
		return c.Next()
	}
}

// common.go
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
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/techneurology/neurorelief/internal/services"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/types"
	"github.com/techneurology/neurorelief/internal/utils"
)

// sessionUser extracts the authenticated user set by the auth middleware
func sessionUser(c *fiber.Ctx) (*services.SessionUser, error) {
	user, ok := c.Locals("sessionUser").(*services.SessionUser)
	if !ok || user == nil {
		return nil, fmt.Errorf("session user not found in context")
	}
	return user, nil
}

// parseID parses a positive integer route parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, types.Validationf("%s must be a positive integer", name)
	}
	return uint(id), nil
}

// parseLimit reads the optional limit query parameter, 0 means default
func parseLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return 0
	}
	return limit
}

// respondError maps the error taxonomy onto HTTP responses: validation
// errors are 400 with the message verbatim, missing rows are 404, anything
// else is logged and returned as a generic 500.
func respondError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	var vErr *types.ValidationError
	if errors.As(err, &vErr) {
		return utils.ValidationErrorResponse(c, vErr.Message)
	}
	if errors.Is(err, storage.ErrNotFound) {
		return utils.NotFoundResponse(c, notFoundMsg)
	}
	return utils.InternalErrorResponse(c, failMsg, err)
}

// decodeBody parses the request body into dst, mapping parse failures to a
// validation error.
func decodeBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return types.Validationf("request body is not valid JSON")
	}
	return nil
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	apiresponses "github.com/narender/product-console/common/apiresponses"
)

// GetState exposes the current view state for scripts and tests.
func (h *ProductConsoleHandler) GetState(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(h.service.Snapshot()))
}

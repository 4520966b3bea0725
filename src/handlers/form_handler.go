package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func (h *ProductConsoleHandler) EditProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	if appErr := h.service.EditByID(id); appErr != nil {
		h.logger.WarnContext(c.UserContext(), "Console: Cannot edit product", slog.Int64("product_id", id))
		return appErr
	}
	return backToConsole(c)
}

func (h *ProductConsoleHandler) CancelForm(c *fiber.Ctx) error {
	h.service.Cancel()
	return backToConsole(c)
}

func (h *ProductConsoleHandler) RefreshProducts(c *fiber.Ctx) error {
	if appErr := h.service.List(c.UserContext()); appErr != nil {
		h.logger.WarnContext(c.UserContext(), "Console: Refresh failed", slog.String("code", appErr.Code))
	}
	return backToConsole(c)
}

package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/product-console/common/apierrors"
	apirequests "github.com/narender/product-console/common/apirequests"
)

// SubmitProduct copies the posted fields into the form and submits it. Failures are shown on
// the page through the error banner.
func (h *ProductConsoleHandler) SubmitProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req apirequests.ProductFormRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		h.logger.ErrorContext(ctx, "Console: Invalid product form", slog.String("error", parseErr.Error()))
		return apierrors.NewAppError(apierrors.ErrCodeRequestValidation, "Invalid request body format", parseErr)
	}

	h.service.SetName(req.Name)
	h.service.SetPrice(req.Price)
	if appErr := h.service.Submit(ctx); appErr != nil {
		h.logger.WarnContext(ctx, "Console: Product was not saved", slog.String("code", appErr.Code))
	}
	return backToConsole(c)
}

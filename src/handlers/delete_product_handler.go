package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/product-console/common/apierrors"
	apirequests "github.com/narender/product-console/common/apirequests"
	"github.com/narender/product-console/src/services"
)

// DeleteProduct deletes only when the confirmation page answered yes.
func (h *ProductConsoleHandler) DeleteProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := productID(c)
	if err != nil {
		return err
	}

	var req apirequests.DeleteConfirmationRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return apierrors.NewAppError(apierrors.ErrCodeRequestValidation, "Invalid request body format", parseErr)
	}

	confirmer := services.ConfirmFunc(func(context.Context, string) bool { return req.Confirmed() })
	if appErr := h.service.Delete(ctx, id, confirmer); appErr != nil && appErr.Code != apierrors.ErrCodeDeleteDeclined {
		h.logger.WarnContext(ctx, "Console: Product was not deleted",
			slog.Int64("product_id", id), slog.String("code", appErr.Code))
	}
	return backToConsole(c)
}

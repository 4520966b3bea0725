package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/src/models"
	"github.com/narender/product-console/src/services"
)

type confirmPage struct {
	ID      int64
	Prompt  string
	Product *models.Product
}

func (h *ProductConsoleHandler) render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return apierrors.NewAppError(apierrors.ErrCodeInternalProcessing, "Failed to render page", err)
	}
	c.Type("html", "utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// ShowConsole renders the list, the form and the current error banner.
func (h *ProductConsoleHandler) ShowConsole(c *fiber.Ctx) error {
	state := h.service.Snapshot()
	h.logger.DebugContext(c.UserContext(), "Console: Rendering page",
		slog.Int("products", len(state.Products)),
		slog.Bool("editing", state.Form.Editing))
	return h.render(c, "index.html", state)
}

// ConfirmDelete asks before a delete is posted.
func (h *ProductConsoleHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	page := confirmPage{ID: id, Prompt: services.DeletePrompt}
	for _, p := range h.service.Snapshot().Products {
		if p.ID == id {
			product := p
			page.Product = &product
			break
		}
	}
	return h.render(c, "confirm.html", page)
}

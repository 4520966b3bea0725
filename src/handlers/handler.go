package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/product-console/src/services"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type ProductConsoleHandler struct {
	service services.ProductConsoleService
	logger  *slog.Logger
}

func NewProductConsoleHandler(svc services.ProductConsoleService, logger *slog.Logger) *ProductConsoleHandler {
	return &ProductConsoleHandler{
		service: svc,
		logger:  logger,
	}
}

// productID reads the :id route parameter.
func productID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "Invalid product id: "+c.Params("id"))
	}
	return id, nil
}

// backToConsole finishes a form post with post/redirect/get.
func backToConsole(c *fiber.Ctx) error {
	return c.Redirect("/", http.StatusSeeOther)
}

package handlers

import (
	"log/slog"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/narender/product-console/common/middleware"
)

// NewApp builds the console's fiber app with middleware and routes registered.
func NewApp(h *ProductConsoleHandler, appName string, logger *slog.Logger) *fiber.App {
	logger.Debug("Setting up Fiber app")
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          middleware.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestLoggerMiddleware(logger))

	RegisterRoutes(app, h)
	logger.Debug("All routes registered successfully")
	return app
}

// RegisterRoutes wires every console route onto app.
func RegisterRoutes(app *fiber.App, h *ProductConsoleHandler) {
	app.Get("/", h.ShowConsole)
	app.Post("/products", h.SubmitProduct)
	app.Post("/products/:id/edit", h.EditProduct)
	app.Get("/products/:id/delete", h.ConfirmDelete)
	app.Post("/products/:id/delete", h.DeleteProduct)
	app.Post("/form/cancel", h.CancelForm)
	app.Post("/refresh", h.RefreshProducts)

	app.Get("/state", h.GetState)
	app.Get("/health", h.HealthCheck)
}

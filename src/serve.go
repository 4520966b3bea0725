package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/narender/product-console/common/globals"
	"github.com/narender/product-console/common/lifecycle"
	"github.com/narender/product-console/src/handlers"
)

func (c *cli) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := globals.Cfg()
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if appErr := c.console.List(ctx); appErr != nil {
				c.logger.WarnContext(ctx, "Initial product fetch failed", slog.String("code", appErr.Code))
			}

			handler := handlers.NewProductConsoleHandler(c.console, c.logger)
			app := handlers.NewApp(handler, cfg.ServiceName, c.logger)

			addr := fmt.Sprintf(":%s", cfg.ConsolePort)
			listenErr := make(chan error, 1)
			go func() {
				c.logger.Info("Web console starting to listen", slog.String("address", addr))
				if err := app.Listen(addr); err != nil {
					listenErr <- err
					cancel()
				}
			}()

			c.served = true
			shutdownErr := lifecycle.WaitForGracefulShutdown(ctx, cfg, &lifecycle.FiberShutdownAdapter{App: app}, globals.TelemetryShutdown())

			select {
			case err := <-listenErr:
				return fmt.Errorf("web console listener failed: %w", err)
			default:
			}
			return shutdownErr
		},
	}
}

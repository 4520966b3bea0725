package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/globals"
	"github.com/narender/product-console/common/telemetry/instrumentation"
	"github.com/narender/product-console/src/repositories"
	"github.com/narender/product-console/src/services"
)

type cli struct {
	configFile string
	apiURL     string

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	logger  *slog.Logger
	console services.ProductConsoleService

	// served is set once serve has run its own shutdown sequence.
	served bool
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "product-console",
		Short:             "Manage products through the product API",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "product API base URL (overrides PRODUCT_API_URL)")

	root.AddCommand(
		c.listCommand(),
		c.showCommand(),
		c.createCommand(),
		c.updateCommand(),
		c.deleteCommand(),
		c.serveCommand(),
	)
	return root
}

// setup loads configuration and builds the console before any subcommand runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if c.console != nil {
		return nil
	}

	var opts []config.Option
	if c.apiURL != "" {
		opts = append(opts, config.WithProductAPIURL(c.apiURL))
	}
	if err := globals.Init(c.configFile, opts...); err != nil {
		return err
	}

	cfg := globals.Cfg()
	c.logger = globals.Logger()
	client := instrumentation.NewHTTPClient(cfg.RequestTimeout)
	repo := repositories.NewHTTPProductRepository(cfg.ProductAPIURL, client, c.logger)
	c.console = services.NewProductConsoleService(repo, c.logger)
	return nil
}

// flushTelemetry exports whatever a short-lived command recorded.
func (c *cli) flushTelemetry() {
	if c.console == nil || c.served {
		return
	}
	cfg := globals.Cfg()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownOtelMinTimeout)
	defer cancel()
	if err := globals.TelemetryShutdown()(ctx); err != nil {
		c.logger.Warn("Telemetry flush failed", slog.Any("error", err))
	}
}

// consoleError turns the console's current message into the command's error.
func (c *cli) consoleError() error {
	if msg := c.console.Snapshot().Error; msg != "" {
		return errors.New(msg)
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}
	return id, nil
}

func notFound(id int64) error {
	return fmt.Errorf("product %d not found", id)
}

func (c *cli) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if appErr := c.console.List(cmd.Context()); appErr != nil {
				return c.consoleError()
			}
			printProducts(c.out, c.console.Snapshot().Products)
			return nil
		},
	}
}

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			product, appErr := c.console.Get(cmd.Context(), id)
			if appErr != nil {
				if appErr.Code == apierrors.ErrCodeProductNotFound {
					return notFound(id)
				}
				return errors.New(services.MsgFetchFailed)
			}
			printProduct(c.out, *product)
			return nil
		},
	}
}

func (c *cli) createCommand() *cobra.Command {
	var name, price string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.console.SetName(name)
			c.console.SetPrice(price)
			if appErr := c.console.Submit(cmd.Context()); appErr != nil {
				return c.consoleError()
			}
			fmt.Fprintf(c.out, "Created %s\n", name)
			printProducts(c.out, c.console.Snapshot().Products)
			return c.consoleError()
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&price, "price", "", "product price, e.g. 9.99")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func (c *cli) updateCommand() *cobra.Command {
	var name, price string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product's name and/or price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("price") {
				return errors.New("nothing to update: pass --name and/or --price")
			}

			if appErr := c.console.List(cmd.Context()); appErr != nil {
				return c.consoleError()
			}
			if appErr := c.console.EditByID(id); appErr != nil {
				return notFound(id)
			}
			if cmd.Flags().Changed("name") {
				c.console.SetName(name)
			}
			if cmd.Flags().Changed("price") {
				c.console.SetPrice(price)
			}
			if appErr := c.console.Submit(cmd.Context()); appErr != nil {
				return c.consoleError()
			}
			fmt.Fprintf(c.out, "Updated product %d\n", id)
			printProducts(c.out, c.console.Snapshot().Products)
			return c.consoleError()
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new product name")
	cmd.Flags().StringVar(&price, "price", "", "new product price")
	return cmd
}

func (c *cli) deleteCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var confirmer services.Confirmer = terminalConfirmer{in: c.in, out: c.out}
			if yes {
				confirmer = services.ConfirmFunc(func(context.Context, string) bool { return true })
			}

			appErr := c.console.Delete(cmd.Context(), id, confirmer)
			if appErr != nil {
				if appErr.Code == apierrors.ErrCodeDeleteDeclined {
					fmt.Fprintln(c.out, "Delete cancelled")
					return nil
				}
				return c.consoleError()
			}
			fmt.Fprintf(c.out, "Deleted product %d\n", id)
			return c.consoleError()
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

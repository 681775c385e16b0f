package main

import (
	"context"
	"log/slog"

	"shipments/cmd"

	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shipctl",
		Short: "Inspect and drive order shipment statuses",
		Long: `shipctl works with the shipment status lifecycle of storefront orders.

Offline commands:
  statuses - List statuses with their badges
  check    - Check whether a status change is allowed

Backend commands (configured like the API server, .env is honoured):
  track     - Show live tracking for an order or AWB
  sync      - Reconcile an order with its carrier
  set       - Change an order's status manually
  create    - Book a shipment for an order
  couriers  - List couriers serving a route
  history   - Show the reconciliations that changed an order
  sweep     - Reconcile every in-transit order once`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log backend requests")

	root.AddCommand(
		newStatusesCmd(),
		newCheckCmd(),
		newTrackCmd(),
		newSyncCmd(),
		newSetCmd(),
		newCreateCmd(),
		newCouriersCmd(),
		newHistoryCmd(),
		newSweepCmd(),
	)
	return root
}

// withApp builds the composition root for one command run.
func withApp(c *cobra.Command, run func(ctx context.Context, app *cmd.CompositionRoot) error) error {
	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	return run(ctx, app)
}

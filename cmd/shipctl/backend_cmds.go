package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"shipments/cmd"
	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"

	"github.com/spf13/cobra"
)

func newTrackCmd() *cobra.Command {
	var byAWB bool

	c := &cobra.Command{
		Use:   "track <orderId|awb>",
		Short: "Show live tracking for an order or AWB",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withApp(c, func(ctx context.Context, app *cmd.CompositionRoot) error {
				out := c.OutOrStdout()
				if byAWB {
					query, err := queries.NewTrackByAWBQuery(args[0])
					if err != nil {
						return err
					}
					handler := app.CreateTrackByAWBQueryHandler()
					res, err := handler.Handle(ctx, query)
					if err != nil {
						return err
					}
					printBadge(out, res.Badge)
					printTracking(out, &res.Tracking)
					return nil
				}

				query, err := queries.NewTrackOrderQuery(args[0])
				if err != nil {
					return err
				}
				handler := app.CreateTrackOrderQueryHandler()
				res, err := handler.Handle(ctx, query)
				if err != nil {
					return err
				}
				if !res.Success {
					fmt.Fprintf(out, "warning: %s\n", res.Message)
				}
				if res.Order != nil {
					printBadge(out, res.Badge)
				}
				printTracking(out, res.Tracking)
				if res.Window != nil {
					fmt.Fprintf(out, "expected: %s - %s\n",
						res.Window.Earliest.Format("02 Jan 2006"), res.Window.Latest.Format("02 Jan 2006"))
				}
				return nil
			})
		},
	}
	c.Flags().BoolVar(&byAWB, "awb", false, "Treat the argument as an air waybill number")
	return c
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <orderId>",
		Short: "Reconcile an order with its carrier",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withApp(c, func(ctx context.Context, app *cmd.CompositionRoot) error {
				command, err := commands.NewSyncStatusCommand(args[0])
				if err != nil {
					return err
				}
				handler := app.CreateSyncStatusCommandHandler()
				res, err := handler.Handle(ctx, command)
				if err != nil {
					return err
				}

				out := c.OutOrStdout()
				printBadge(out, shipment.BadgeFor(res.Order.Status()))
				fmt.Fprintf(out, "backend updated: %t, local changed: %t\n", res.StatusUpdated, res.Changed)
				if len(res.ChangedFields) > 0 {
					fmt.Fprintf(out, "fields: %s\n", strings.Join(res.ChangedFields, ", "))
				}
				if res.Message != "" {
					fmt.Fprintln(out, res.Message)
				}
				return nil
			})
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set <orderId> <status>",
		Short:   "Change an order's status manually",
		Example: `  shipctl set 66f1c0a2e4b0 "Out for Delivery"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			status, err := shipment.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return withApp(c, func(ctx context.Context, app *cmd.CompositionRoot) error {
				command, err := commands.NewUpdateStatusCommand(args[0], status)
				if err != nil {
					return err
				}
				handler := app.CreateUpdateStatusCommandHandler()
				res, err := handler.Handle(ctx, command)
				if err != nil {
					return err
				}
				printBadge(c.OutOrStdout(), shipment.BadgeFor(res.Order.Status()))
				return nil
			})
		},
	}
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <orderId>",
		Short: "Book a shipment for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withApp(c, func(ctx context.Context, app *cmd.CompositionRoot) error {
				command, err := commands.NewCreateShipmentCommand(args[0])
				if err != nil {
					return err
				}
				handler := app.CreateCreateShipmentCommandHandler()
				res, err := handler.Handle(ctx, command)
				if err != nil {
					return err
				}

				out := c.OutOrStdout()
				fmt.Fprintln(out, res.Message)
				fmt.Fprintf(out, "shipment: %s\n", res.Shipment.ShipmentID)
				if res.Shipment.AWBNumber != "" {
					fmt.Fprintf(out, "awb: %s (%s)\n", res.Shipment.AWBNumber, res.Shipment.CourierName)
				}
				if res.HasInvoice() {
					fmt.Fprintf(out, "invoice: %s\n", res.InvoiceURL)
				}
				return nil
			})
		},
	}
}

func newCouriersCmd() *cobra.Command {
	var (
		pickup   string
		delivery string
		weight   float64
		cod      bool
	)

	c := &cobra.Command{
		Use:   "couriers",
		Short: "List couriers serving a route, cheapest first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			query, err := queries.NewGetAvailableCouriersQuery(pickup, delivery, weight, cod)
			if err != nil {
				return err
			}
			return withApp(c, func(ctx context.Context, app *cmd.CompositionRoot) error {
				handler := app.CreateGetAvailableCouriersQueryHandler()
				options, err := handler.Handle(ctx, query)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCOURIER\tRATE\tDAYS\tCOD")
				for _, o := range options {
					fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%t\n", o.ID, o.Name, o.Rate, o.EstimatedDays, o.COD)
				}
				return w.Flush()
			})
		},
	}
	c.Flags().StringVar(&pickup, "pickup", "", "Pickup postcode")
	c.Flags().StringVar(&delivery, "delivery", "", "Delivery postcode")
	c.Flags().Float64Var(&weight, "weight", 0.5, "Parcel weight in kg")
	c.Flags().BoolVar(&cod, "cod", false, "Only couriers offering cash on delivery")
	_ = c.MarkFlagRequired("pickup")
	_ = c.MarkFlagRequired("delivery")
	return c
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <orderId>",
		Short: "Show the reconciliations that changed an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			query, err := queries.NewGetSyncHistoryQuery(args[0])
			if err != nil {
				return err
			}
			return withApp(c, func(ctx context.Context, app *cmd.CompositionRoot) error {
				handler := app.CreateGetSyncHistoryQueryHandler()
				records, err := handler.Handle(ctx, query)
				if err != nil {
					return err
				}
				return printSyncHistory(c.OutOrStdout(), query.OrderID(), records)
			})
		},
	}
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Reconcile every in-transit order once",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c, func(ctx context.Context, app *cmd.CompositionRoot) error {
				report, err := app.RunStatusSweep(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "checked %d, changed %d, failed %d\n",
					report.Checked, report.Changed, report.Failed)
				return nil
			})
		},
	}
}

func printBadge(w io.Writer, b shipment.Badge) {
	fmt.Fprintf(w, "status: %s [%s] %d%%\n", b.Label, b.Icon, b.Percent)
}

func printSyncHistory(w io.Writer, orderID string, records []ports.SyncRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintf(w, "no sync has changed order %s\n", orderID)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYNCED\tFROM\tTO\tBACKEND\tFIELDS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
			r.SyncedAt.Format("02 Jan 2006 15:04"), r.StatusBefore, r.StatusAfter,
			r.StatusUpdated, strings.Join(r.ChangedFields, ","))
	}
	return tw.Flush()
}

func printTracking(w io.Writer, t *shipment.Tracking) {
	if t == nil {
		return
	}
	if t.AWB != "" {
		fmt.Fprintf(w, "awb: %s (%s)\n", t.AWB, t.CourierName)
	}
	if t.CurrentStatus != "" {
		fmt.Fprintf(w, "carrier: %s at %s\n", t.CurrentStatus, t.CurrentLocation)
	}
	for _, e := range t.Events {
		date := ""
		if e.Date != nil {
			date = e.Date.Format("02 Jan 15:04")
		}
		fmt.Fprintf(w, "  %s  %s  %s\n", date, e.Status, e.Location)
	}
}

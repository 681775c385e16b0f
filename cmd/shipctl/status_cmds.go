package main

import (
	"fmt"
	"text/tabwriter"

	"shipments/internal/core/domain/model/shipment"

	"github.com/spf13/cobra"
)

func newStatusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List statuses with their badges",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STATUS\tSTEP\tICON\tPROGRESS\tTONE")
			for _, s := range shipment.AllStatuses() {
				b := shipment.BadgeFor(s)
				step := "-"
				if idx, ok := s.ProgressionIndex(); ok {
					step = fmt.Sprint(idx + 1)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\n", b.Label, step, b.Icon, b.Percent, b.Tone)
			}
			return w.Flush()
		},
	}
}

func newCheckCmd() *cobra.Command {
	var policyName string

	c := &cobra.Command{
		Use:   "check <current> <proposed>",
		Short: "Check whether a status change is allowed",
		Example: `  shipctl check Shipped "Out for Delivery"
  shipctl check Returned Pending --policy strict`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			policy, err := shipment.ParsePolicy(policyName)
			if err != nil {
				return err
			}
			current := shipment.StatusFromName(args[0])
			proposed, err := shipment.ParseStatus(args[1])
			if err != nil {
				return err
			}

			if err = shipment.ValidateTransition(current, proposed, policy); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "allowed: %s -> %s\n", current, proposed)
			return nil
		},
	}
	c.Flags().StringVar(&policyName, "policy", "permissive", "Policy for special or unrecognized current statuses (permissive|strict)")
	return c
}

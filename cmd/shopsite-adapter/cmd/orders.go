package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

func ordersCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List recent orders",
		Long: "Fetch orders placed in the last N days from the store's orders\n" +
			"database. The first call in a process exchanges the authorization\n" +
			"code for an access token.",
		Example: `  # Orders from the last 30 days
  shopsite-adapter orders

  # Last week, as JSON
  shopsite-adapter orders --days 7 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := service()
			if err != nil {
				return err
			}

			orders, err := svc.GetOrders(cmd.Context(), days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, orders)
			}
			if len(orders) == 0 {
				_, err := fmt.Fprintln(out, "No orders found.")
				return err
			}
			return printOrdersTable(out, orders)
		},
	}

	cmd.Flags().IntVar(&days, "days", shopsite.DefaultOrderDays, "look back this many days (0 is today only)")

	return cmd
}

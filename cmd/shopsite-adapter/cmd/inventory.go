package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var errInventoryRejected = errors.New("inventory update rejected")

func inventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory SKU QUANTITY",
		Short: "Set the inventory quantity for a SKU",
		Long: "Post an XML inventory import for a single product. ShopSite only\n" +
			"reports success or failure; details are in the log.",
		Example: `  shopsite-adapter inventory WIDGET-01 12`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sku := args[0]
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			svc, err := service()
			if err != nil {
				return err
			}

			if !svc.UpdateInventory(cmd.Context(), sku, quantity) {
				return fmt.Errorf("%w for %s", errInventoryRejected, sku)
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, map[string]any{"sku": sku, "quantity": quantity, "updated": true})
			}
			_, err = fmt.Fprintf(out, "Set %s to %d.\n", sku, quantity)
			return err
		},
	}
}

func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("quantity must not be negative (got %d)", n)
	}
	return n, nil
}

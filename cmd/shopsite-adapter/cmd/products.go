package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

func productsCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		Long: "Fetch the product catalog and print one page of it. The store\n" +
			"returns the whole catalog on every call; paging happens locally.",
		Example: `  # First page
  shopsite-adapter products

  # Products 10 through 14
  shopsite-adapter products --limit 5 --offset 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := service()
			if err != nil {
				return err
			}

			products, err := svc.GetProducts(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, products)
			}
			if len(products) == 0 {
				_, err := fmt.Fprintln(out, "No products found.")
				return err
			}
			return printProductsTable(out, products)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", shopsite.DefaultProductLimit, "maximum products to print")
	cmd.Flags().IntVar(&offset, "offset", 0, "index of the first product")

	return cmd
}

package cmd

import (
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/shopsite-adapter/api/openapi"
	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

func openapiCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document for the HTTP API",
		Long: "Print the OpenAPI 3.1 document describing the serve command's\n" +
			"endpoints. No configuration or store access is needed.",
		Example: `  shopsite-adapter openapi --format yaml > openapi.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api := humaecho.New(echo.New(), openapi.Config(Version))
			registerRoutes(api, shopsite.NewClient(shopsite.Credentials{}))
			return openapi.Render(cmd.OutOrStdout(), api, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "document format (json, yaml)")

	return cmd
}

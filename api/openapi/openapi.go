// Package openapi holds the Huma configuration for the adapter API and
// renders its OpenAPI document.
package openapi

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danielgtaylor/huma/v2"
)

const (
	// Title is the API title in the generated document.
	Title = "ShopSite Adapter API"

	description = "Read orders and products from a ShopSite store and set " +
		"inventory levels. Every store call is signed with the application's " +
		"client secret; the adapter authenticates lazily on first use."
)

// Config returns the Huma configuration for the given build version. The
// document is served at /openapi.json and interactive docs at /docs.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.Info.Description = description
	cfg.Tags = []*huma.Tag{
		{Name: "orders", Description: "Orders placed in the store"},
		{Name: "products", Description: "Catalog products"},
		{Name: "inventory", Description: "Inventory imports"},
		{Name: "shopsite", Description: "Session and call quota state"},
	}
	return cfg
}

// Render writes the OpenAPI document of api to w as "json" or "yaml".
func Render(w io.Writer, api huma.API, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case "yaml":
		data, err = api.OpenAPI().YAML()
	case "json":
		data, err = json.MarshalIndent(api.OpenAPI(), "", "  ")
	default:
		return fmt.Errorf("unsupported OpenAPI format %q (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("rendering OpenAPI %s: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing OpenAPI document: %w", err)
	}
	return nil
}

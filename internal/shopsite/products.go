package shopsite

import (
	"context"
	"fmt"
)

// DefaultProductLimit is the page size callers use when none is requested.
const DefaultProductLimit = 50

// GetProducts returns one page of the product catalog. The products data
// source has no pagination, so every call transfers the whole catalog and
// slices it locally.
func (c *Client) GetProducts(ctx context.Context, limit, offset int) ([]Product, error) {
	params := map[string]string{
		"dbname":  "products",
		"version": apiVersion,
	}

	all, err := execute[Product](ctx, c, dbXMLEndpoint, params, "Products", "Product")
	if err != nil {
		return nil, fmt.Errorf("getting products: %w", err)
	}

	return Page(all, limit, offset), nil
}

// Page returns items[offset:offset+limit], clamped to the slice bounds. A
// limit <= 0 yields an empty page and a negative offset means 0.
func Page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(items) {
		return []T{}
	}

	if limit > len(items)-offset {
		limit = len(items) - offset
	}
	return items[offset : offset+limit]
}

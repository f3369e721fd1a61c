package shopsite

import (
	"context"
	"fmt"
	"time"
)

// DefaultOrderDays is the lookback callers use when none is requested.
const DefaultOrderDays = 30

const startDateLayout = "20060102"

// GetOrders returns orders placed in the last days days; 0 means today's
// orders. The date window is applied by the platform; no further filtering
// happens here.
func (c *Client) GetOrders(ctx context.Context, days int) ([]Order, error) {
	if days < 0 {
		return nil, fmt.Errorf("getting orders: %w: days must not be negative (got %d)", ErrInvalidArgument, days)
	}

	params := map[string]string{
		"dbname":     "orders",
		"version":    apiVersion,
		"start_date": StartDate(c.nowFunc(), days),
	}

	orders, err := execute[Order](ctx, c, dbXMLEndpoint, params, "Orders", "Order")
	if err != nil {
		return nil, fmt.Errorf("getting orders: %w", err)
	}
	return orders, nil
}

// StartDate formats the UTC calendar date days before now as YYYYMMDD.
func StartDate(now time.Time, days int) string {
	return now.UTC().AddDate(0, 0, -days).Format(startDateLayout)
}

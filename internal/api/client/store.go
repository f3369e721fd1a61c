package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

type ordersResponse struct {
	Orders []shopsite.Order `json:"orders"`
	Count  int              `json:"count"`
}

type productsResponse struct {
	Products []shopsite.Product `json:"products"`
	Count    int                `json:"count"`
}

type inventoryRequest struct {
	Quantity int `json:"quantity"`
}

type inventoryResponse struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Updated  bool   `json:"updated"`
}

// GetOrders returns orders placed in the last days days.
func (c *Client) GetOrders(ctx context.Context, days int) ([]shopsite.Order, error) {
	q := url.Values{"days": {strconv.Itoa(days)}}

	var resp ordersResponse
	if err := c.get(ctx, withQuery("/api/v1/orders", q), &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// GetProducts returns one page of the catalog.
func (c *Client) GetProducts(ctx context.Context, limit, offset int) ([]shopsite.Product, error) {
	q := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}

	var resp productsResponse
	if err := c.get(ctx, withQuery("/api/v1/products", q), &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// UpdateInventory sets the on-hand quantity for sku. Failures are logged
// and reported as false.
func (c *Client) UpdateInventory(ctx context.Context, sku string, quantity int) bool {
	var resp inventoryResponse
	path := "/api/v1/inventory/" + url.PathEscape(sku)
	if err := c.put(ctx, path, inventoryRequest{Quantity: quantity}, &resp); err != nil {
		c.logger.Warn("inventory update failed", "sku", sku, "error", err)
		return false
	}
	return resp.Updated
}

// QuotaStatus mirrors the server's daily quota report.
type QuotaStatus struct {
	Enabled    bool      `json:"enabled"`
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// Quota returns the server's daily call quota.
func (c *Client) Quota(ctx context.Context) (*QuotaStatus, error) {
	var q QuotaStatus
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// SessionStatus mirrors the server's session report. The token itself is
// never exposed.
type SessionStatus struct {
	Authenticated bool       `json:"authenticated"`
	TokenType     string     `json:"token_type,omitempty"`
	Scope         string     `json:"scope,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// Session returns whether the server currently holds an access token.
func (c *Client) Session(ctx context.Context) (*SessionStatus, error) {
	var s SessionStatus
	if err := c.get(ctx, "/api/v1/session", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func withQuery(path string, q url.Values) string {
	return fmt.Sprintf("%s?%s", path, q.Encode())
}

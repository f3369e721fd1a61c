package shopsite

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"

	"github.com/donaldgifford/shopsite-adapter/internal/metrics"
)

type inventoryImport struct {
	XMLName  xml.Name          `xml:"Products"`
	Products []inventoryRecord `xml:"Product"`
}

type inventoryRecord struct {
	SKU       string `xml:"SKU"`
	Inventory int    `xml:"Inventory"`
}

// InventoryXML renders the db_import payload setting one SKU's quantity.
func InventoryXML(sku string, quantity int) ([]byte, error) {
	out, err := xml.Marshal(inventoryImport{
		Products: []inventoryRecord{{SKU: sku, Inventory: quantity}},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding inventory payload: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// UpdateInventory sets the inventory quantity for sku. It reports whether
// the platform accepted the import; the cause of a failure is logged, not
// returned.
func (c *Client) UpdateInventory(ctx context.Context, sku string, quantity int) bool {
	if err := c.updateInventory(ctx, sku, quantity); err != nil {
		metrics.InventoryUpdatesTotal.WithLabelValues("failure").Inc()
		c.logger.Error("inventory update failed", "sku", sku, "quantity", quantity, "err", err)
		return false
	}

	metrics.InventoryUpdatesTotal.WithLabelValues("success").Inc()
	c.logger.Info("inventory updated", "sku", sku, "quantity", quantity)
	return true
}

// updateInventory posts the XML payload to db_import.cgi. The payload is not
// signed; the signing fields themselves are, and travel in the query string.
func (c *Client) updateInventory(ctx context.Context, sku string, quantity int) error {
	if err := c.waitRateLimit(ctx); err != nil {
		return err
	}

	tok, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	payload, err := InventoryXML(sku, quantity)
	if err != nil {
		return err
	}

	nonce, err := Nonce(c.random)
	if err != nil {
		return err
	}
	ts := Timestamp(c.nowFunc())

	params := map[string]string{
		paramClientApp: clientAppID,
		paramToken:     tok.AccessToken,
		paramTimestamp: ts,
		paramNonce:     nonce,
	}

	sig, err := Sign(c.creds.ClientSecret, params, tok, ts, nonce)
	if err != nil {
		return fmt.Errorf("signing request: %w", err)
	}

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	query.Set(paramSignature, sig)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpointURL(dbImportEndpoint)+"?"+query.Encode(),
		bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", dbImportEndpoint, err)
	}
	req.Header.Set("Content-Type", "text/xml")

	_, err = c.do(dbImportEndpoint, req)
	return err
}

package shopsite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/shopsite-adapter/internal/metrics"
)

// Wire names of the signing fields.
const (
	paramToken     = "oauth_token"
	paramTimestamp = "oauth_timestamp"
	paramNonce     = "oauth_nonce"
	paramSignature = "oauth_signature"
	paramClientApp = "clientApp"
)

// execute sends a signed form POST to endpoint and normalizes the records
// under root. Only params are covered by the signature; the signing fields
// and clientApp are appended afterwards. There is a single attempt.
func execute[T any](
	ctx context.Context,
	c *Client,
	endpoint string,
	params map[string]string,
	root, record string,
) ([]T, error) {
	if err := c.waitRateLimit(ctx); err != nil {
		return nil, err
	}

	tok, err := c.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	sr, err := c.sign(params, tok)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set(paramToken, sr.token.AccessToken)
	form.Set(paramTimestamp, sr.timestamp)
	form.Set(paramNonce, sr.nonce)
	form.Set(paramSignature, sr.signature)
	form.Set(paramClientApp, clientAppID)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpointURL(endpoint),
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(endpoint, req)
	if err != nil {
		return nil, err
	}

	coll, err := parseCollection[T](bytes.NewReader(body), root, record)
	if err != nil {
		metrics.ShopSiteRequestsTotal.WithLabelValues(endpoint, "malformed").Inc()
		c.logger.Error("parsing response failed", "endpoint", endpoint, "root", root, "err", err)
		return nil, err
	}

	out := coll.records()
	c.logger.Debug("decoded response",
		"endpoint", endpoint,
		"root", root,
		"shape", coll.shape.String(),
		"records", len(out),
	)
	return out, nil
}

// do executes req and returns the body of a 2xx response. Failures are
// logged here and returned wrapped in ErrTransport.
func (c *Client) do(endpoint string, req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ShopSiteRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ShopSiteRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.logger.Error("request failed", "endpoint", endpoint, "err", err)
		return nil, fmt.Errorf("%w: executing %s request: %w", ErrTransport, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ShopSiteRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.logger.Error("reading response failed", "endpoint", endpoint, "err", err)
		return nil, fmt.Errorf("%w: reading %s response: %w", ErrTransport, endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.ShopSiteRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.logger.Error("unexpected status", "endpoint", endpoint, "status", resp.StatusCode)
		return nil, fmt.Errorf(
			"%w: %s (status %d): %s",
			ErrTransport,
			endpoint,
			resp.StatusCode,
			string(body),
		)
	}

	metrics.ShopSiteRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return body, nil
}

func (c *Client) waitRateLimit(ctx context.Context) error {
	if c.rateLimiter == nil {
		return nil
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		if errors.Is(err, ErrDailyLimitReached) {
			metrics.ShopSiteDailyLimitHits.Inc()
		}
		return fmt.Errorf("rate limit: %w", err)
	}
	metrics.ShopSiteDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	return nil
}

// Package shopsite provides a signed XML client for the ShopSite back-office
// API, abstracted behind interfaces for testability.
package shopsite

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Platform-mandated endpoint names and constants. The remote platform checks
// these verbatim.
const (
	authorizeEndpoint = "authorize.cgi"
	dbXMLEndpoint     = "db_xml.cgi"
	dbImportEndpoint  = "db_import.cgi"

	clientAppID = "1"
	apiVersion  = "12.0"
)

// Credentials identify this application to a ShopSite store. Username and
// Password are only needed by the back-office console and may be empty.
type Credentials struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	AuthCode     string
	Username     string
	Password     string
}

// Service defines the store operations exposed by the adapter.
type Service interface {
	GetOrders(ctx context.Context, days int) ([]Order, error)
	GetProducts(ctx context.Context, limit, offset int) ([]Product, error)
	UpdateInventory(ctx context.Context, sku string, quantity int) bool
}

// Client implements Service against the ShopSite XML API. A Client owns its
// Session; the access token is obtained lazily on first use.
type Client struct {
	creds       Credentials
	baseURL     string
	client      *http.Client
	session     *Session
	rateLimiter *RateLimiter
	logger      *slog.Logger
	nowFunc     func() time.Time
	random      io.Reader
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger. Without it nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithRateLimiter gates every signed call behind r.Wait.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// WithRandom overrides the nonce entropy source for testing.
func WithRandom(r io.Reader) Option {
	return func(c *Client) {
		c.random = r
	}
}

// NewClient creates a new ShopSite client for the given credentials.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:   creds,
		baseURL: strings.TrimRight(creds.BaseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		session: &Session{},
		logger:  slog.New(slog.DiscardHandler),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the client's token holder.
func (c *Client) Session() *Session {
	return c.session
}

// RateLimiter returns the configured limiter, or nil.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

func (c *Client) endpointURL(endpoint string) string {
	return c.baseURL + "/" + endpoint
}

var _ Service = (*Client)(nil)

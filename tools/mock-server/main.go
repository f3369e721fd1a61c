// Package main implements a mock ShopSite back office for local development.
// It issues tokens for any authorization code, verifies request signatures
// with a configured client secret, serves XML fixtures for the orders and
// products databases, and records inventory imports in memory.
package main

import (
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

const cgiPrefix = "/cgi-bin/sc/"

// signingFields are form fields that carry the signature rather than being
// covered by it on db_xml requests.
var signingFields = map[string]struct{}{
	"oauth_token":     {},
	"oauth_timestamp": {},
	"oauth_nonce":     {},
	"oauth_signature": {},
	"clientApp":       {},
}

type importPayload struct {
	Products []struct {
		SKU       string `xml:"SKU"`
		Inventory int    `xml:"Inventory"`
	} `xml:"Product"`
}

// mockStore is the in-memory back office.
type mockStore struct {
	logger   *slog.Logger
	secret   string
	orders   []byte
	products []byte

	mu        sync.Mutex
	tokens    map[string]struct{}
	inventory map[string]int
	issued    int
}

func newMockStore(logger *slog.Logger, secret string, orders, products []byte) *mockStore {
	return &mockStore{
		logger:    logger,
		secret:    secret,
		orders:    orders,
		products:  products,
		tokens:    make(map[string]struct{}),
		inventory: make(map[string]int),
	}
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	secret := flag.String("secret", "secret_key", "client secret used to verify signatures")
	ordersFile := flag.String("orders", "tools/mock-server/testdata/orders.xml", "path to orders XML fixture")
	productsFile := flag.String("products", "tools/mock-server/testdata/products.xml", "path to products XML fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	orders, err := loadFixture(*ordersFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *ordersFile, "error", err)
		os.Exit(1)
	}
	products, err := loadFixture(*productsFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *productsFile, "error", err)
		os.Exit(1)
	}

	store := newMockStore(logger, *secret, orders, products)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock ShopSite server", "addr", addr, "base_url", "http://localhost"+addr+"/cgi-bin/sc")

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, store.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func (s *mockStore) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+cgiPrefix+"authorize.cgi", s.authorizeHandler)
	mux.HandleFunc("POST "+cgiPrefix+"db_xml.cgi", s.dbXMLHandler)
	mux.HandleFunc("POST "+cgiPrefix+"db_import.cgi", s.dbImportHandler)
	mux.HandleFunc("GET /inventory", s.inventoryHandler)
	return mux
}

func loadFixture(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return data, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func (s *mockStore) authorizeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeOAuthError(w, "invalid_request", err.Error())
		return
	}
	if r.PostForm.Get("grant_type") != "authorization_code" {
		writeOAuthError(w, "unsupported_grant_type", "grant_type must be authorization_code")
		return
	}
	if r.PostForm.Get("code") == "" || r.PostForm.Get("client_id") == "" {
		s.logger.Warn("authorize request missing code or client_id")
		writeOAuthError(w, "invalid_grant", "code and client_id are required")
		return
	}

	s.mu.Lock()
	s.issued++
	token := "mock-token-" + strconv.Itoa(s.issued)
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   3600,
		"scope":        "read write",
	})
	s.logger.Info("issued mock token", "client_id", r.PostForm.Get("client_id"))
}

func (s *mockStore) dbXMLHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	signed := make(map[string]string)
	for k := range r.PostForm {
		if _, skip := signingFields[k]; !skip {
			signed[k] = r.PostForm.Get(k)
		}
	}
	if !s.verify(w, r.PostForm, signed) {
		return
	}

	var body []byte
	switch r.PostForm.Get("dbname") {
	case "orders":
		body = s.orders
	case "products":
		body = s.products
	default:
		http.Error(w, "unknown dbname", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write(body)
	s.logger.Info("db_xml", "dbname", r.PostForm.Get("dbname"), "start_date", r.PostForm.Get("start_date"))
}

func (s *mockStore) dbImportHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	signed := map[string]string{
		"clientApp":       q.Get("clientApp"),
		"oauth_token":     q.Get("oauth_token"),
		"oauth_timestamp": q.Get("oauth_timestamp"),
		"oauth_nonce":     q.Get("oauth_nonce"),
	}
	if !s.verify(w, q, signed) {
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var payload importPayload
	if err := xml.Unmarshal(data, &payload); err != nil || len(payload.Products) == 0 {
		http.Error(w, "invalid import payload", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	for _, p := range payload.Products {
		s.inventory[p.SKU] = p.Inventory
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/xml")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	fmt.Fprintf(w, "<Response><Imported>%d</Imported></Response>", len(payload.Products))
	s.logger.Info("db_import", "products", len(payload.Products))
}

func (s *mockStore) inventoryHandler(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	snapshot := make(map[string]int, len(s.inventory))
	for k, v := range s.inventory {
		snapshot[k] = v
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(snapshot)
}

// verify checks the token and signature carried in values. On failure it
// writes a 401 and returns false.
func (s *mockStore) verify(w http.ResponseWriter, values url.Values, signed map[string]string) bool {
	token := values.Get("oauth_token")

	s.mu.Lock()
	_, known := s.tokens[token]
	s.mu.Unlock()
	if !known {
		s.logger.Warn("unknown access token")
		http.Error(w, "unknown access token", http.StatusUnauthorized)
		return false
	}

	want, err := shopsite.Sign(
		s.secret,
		signed,
		&shopsite.Token{AccessToken: token},
		values.Get("oauth_timestamp"),
		values.Get("oauth_nonce"),
	)
	if err != nil || want != values.Get("oauth_signature") {
		s.logger.Warn("signature mismatch")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return false
	}
	return true
}

func writeOAuthError(w http.ResponseWriter, code, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]string{
		"error":             code,
		"error_description": description,
	})
}

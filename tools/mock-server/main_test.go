package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

const testSecret = "secret_key"

func loadTestStore(t *testing.T) *mockStore {
	t.Helper()

	orders, err := loadFixture(filepath.Join("testdata", "orders.xml"))
	if err != nil {
		t.Fatalf("loading orders: %v", err)
	}
	products, err := loadFixture(filepath.Join("testdata", "products.xml"))
	if err != nil {
		t.Fatalf("loading products: %v", err)
	}
	return newMockStore(testLogger(), testSecret, orders, products)
}

func startServer(t *testing.T, store *mockStore) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(store.routes())
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server, secret string) *shopsite.Client {
	return shopsite.NewClient(shopsite.Credentials{
		BaseURL:      srv.URL + "/cgi-bin/sc",
		ClientID:     "dev-client",
		ClientSecret: secret,
		AuthCode:     "dev-code",
	}, shopsite.WithHTTPClient(srv.Client()), shopsite.WithLogger(testLogger()))
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := loadFixture(filepath.Join("testdata", "nope.xml")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestAuthorizeHandler(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantError  string
	}{
		{
			name:       "issues token",
			form:       url.Values{"grant_type": {"authorization_code"}, "code": {"c"}, "client_id": {"id"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong grant type",
			form:       url.Values{"grant_type": {"client_credentials"}, "code": {"c"}, "client_id": {"id"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "unsupported_grant_type",
		},
		{
			name:       "missing code",
			form:       url.Values{"grant_type": {"authorization_code"}, "client_id": {"id"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_grant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := loadTestStore(t)
			req := httptest.NewRequest(http.MethodPost, cgiPrefix+"authorize.cgi", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			store.routes().ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status=%d, want %d", w.Code, tt.wantStatus)
			}

			var resp map[string]any
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if tt.wantError != "" {
				if resp["error"] != tt.wantError {
					t.Errorf("error=%v, want %s", resp["error"], tt.wantError)
				}
				return
			}
			if resp["access_token"] != "mock-token-1" {
				t.Errorf("access_token=%v, want mock-token-1", resp["access_token"])
			}
			if resp["expires_in"] != float64(3600) {
				t.Errorf("expires_in=%v, want 3600", resp["expires_in"])
			}
		})
	}
}

func TestClientRoundTrip_Orders(t *testing.T) {
	srv := startServer(t, loadTestStore(t))
	client := newClient(srv, testSecret)

	orders, err := client.GetOrders(context.Background(), 30)
	if err != nil {
		t.Fatalf("GetOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders=%d, want 2", len(orders))
	}
	if got := orders[1].BillingAddress.FirstName; got != "José" {
		t.Errorf("first name=%q, want José", got)
	}
	if len(orders[0].Items) != 2 {
		t.Errorf("items=%d, want 2", len(orders[0].Items))
	}
}

func TestClientRoundTrip_ProductsPaged(t *testing.T) {
	srv := startServer(t, loadTestStore(t))
	client := newClient(srv, testSecret)

	products, err := client.GetProducts(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products=%d, want 2", len(products))
	}
	if products[0].SKU != "CARD-100" || products[1].SKU != "BOOK-DE" {
		t.Errorf("skus=%s,%s want CARD-100,BOOK-DE", products[0].SKU, products[1].SKU)
	}
}

func TestClientRoundTrip_Inventory(t *testing.T) {
	store := loadTestStore(t)
	srv := startServer(t, store)
	client := newClient(srv, testSecret)

	if !client.UpdateInventory(context.Background(), "GEAR-01", 17) {
		t.Fatal("UpdateInventory returned false")
	}

	resp, err := srv.Client().Get(srv.URL + "/inventory")
	if err != nil {
		t.Fatalf("GET /inventory: %v", err)
	}
	defer resp.Body.Close()

	var inv map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&inv); err != nil {
		t.Fatalf("decoding inventory: %v", err)
	}
	if inv["GEAR-01"] != 17 {
		t.Errorf("GEAR-01=%d, want 17", inv["GEAR-01"])
	}
}

func TestClientRoundTrip_WrongSecret(t *testing.T) {
	srv := startServer(t, loadTestStore(t))
	client := newClient(srv, "not-the-secret")

	if _, err := client.GetOrders(context.Background(), 30); err == nil {
		t.Fatal("expected signature rejection")
	}
	if client.UpdateInventory(context.Background(), "GEAR-01", 1) {
		t.Error("expected inventory update to be rejected")
	}
}

func TestDBXMLHandler_UnknownToken(t *testing.T) {
	store := loadTestStore(t)
	form := url.Values{
		"dbname":          {"orders"},
		"oauth_token":     {"forged"},
		"oauth_timestamp": {"1"},
		"oauth_nonce":     {"n"},
		"oauth_signature": {"x"},
	}
	req := httptest.NewRequest(http.MethodPost, cgiPrefix+"db_xml.cgi", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	store.routes().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

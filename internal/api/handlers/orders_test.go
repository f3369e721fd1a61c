package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shopsite-adapter/internal/api/handlers"
	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
	"github.com/donaldgifford/shopsite-adapter/internal/shopsite/mocks"
)

func TestListOrders(t *testing.T) {
	t.Parallel()

	twoOrders := []shopsite.Order{
		{OrderID: "1001", Total: "19.99", Items: []shopsite.OrderItem{{SKU: "A", Quantity: "1"}}},
		{OrderID: "1002", Total: "5.00"},
	}

	tests := []struct {
		name       string
		path       string
		wantDays   int
		orders     []shopsite.Order
		err        error
		wantStatus int
		wantCount  int
	}{
		{
			name:       "default window",
			path:       "/api/v1/orders",
			wantDays:   30,
			orders:     twoOrders,
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:       "explicit days",
			path:       "/api/v1/orders?days=7",
			wantDays:   7,
			orders:     twoOrders[:1],
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:       "zero days is passed through",
			path:       "/api/v1/orders?days=0",
			wantDays:   0,
			orders:     twoOrders[:1],
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:       "nil result is an empty list",
			path:       "/api/v1/orders?days=1",
			wantDays:   1,
			wantStatus: http.StatusOK,
		},
		{
			name:       "transport failure is bad gateway",
			path:       "/api/v1/orders",
			wantDays:   30,
			err:        fmt.Errorf("getting orders: %w", shopsite.ErrTransport),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "daily limit is too many requests",
			path:       "/api/v1/orders",
			wantDays:   30,
			err:        fmt.Errorf("getting orders: %w", shopsite.ErrDailyLimitReached),
			wantStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockService(t)
			svc.EXPECT().GetOrders(mock.Anything, tt.wantDays).Return(tt.orders, tt.err)

			_, api := humatest.New(t)
			handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(svc))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())

			if tt.err != nil {
				return
			}

			var body struct {
				Orders []shopsite.Order `json:"orders"`
				Count  int              `json:"count"`
			}
			decodeBody(t, resp.Body.Bytes(), &body)
			assert.Equal(t, tt.wantCount, body.Count)
			assert.Len(t, body.Orders, tt.wantCount)
			assert.NotNil(t, body.Orders)
		})
	}
}

func TestListOrders_RejectsInvalidDays(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockService(t)

	_, api := humatest.New(t)
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(svc))

	resp := api.Get("/api/v1/orders?days=-1")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "GetOrders", mock.Anything, mock.Anything)
}

func TestListOrders_ErrorMessage(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockService(t)
	svc.EXPECT().GetOrders(mock.Anything, 30).Return(nil, errors.New("getting orders: boom"))

	_, api := humatest.New(t)
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(svc))

	resp := api.Get("/api/v1/orders")
	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "ShopSite API error: getting orders: boom")
}

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

// OrdersHandler serves recent orders from the store.
type OrdersHandler struct {
	svc shopsite.Service
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(svc shopsite.Service) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// ListOrdersInput holds the query parameters for listing orders.
type ListOrdersInput struct {
	Days int `query:"days" default:"30" minimum:"0" maximum:"3650" doc:"Look back this many days; 0 is today only"`
}

// ListOrdersOutput is the response body for listing orders.
type ListOrdersOutput struct {
	Body struct {
		Orders []shopsite.Order `json:"orders" doc:"Orders placed in the window"`
		Count  int              `json:"count"  doc:"Number of orders returned" example:"3"`
	}
}

// ListOrders returns orders placed in the last input.Days days.
func (h *OrdersHandler) ListOrders(ctx context.Context, input *ListOrdersInput) (*ListOrdersOutput, error) {
	orders, err := h.svc.GetOrders(ctx, input.Days)
	if err != nil {
		return nil, upstreamError(err)
	}
	if orders == nil {
		orders = []shopsite.Order{}
	}

	out := &ListOrdersOutput{}
	out.Body.Orders = orders
	out.Body.Count = len(orders)
	return out, nil
}

// RegisterOrderRoutes registers the orders endpoint with the Huma API.
func RegisterOrderRoutes(api huma.API, h *OrdersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "List recent orders",
		Description: "Fetches orders placed since the start date from the ShopSite orders database.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.ListOrders)
}

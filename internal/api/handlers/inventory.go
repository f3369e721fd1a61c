package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

// InventoryHandler sets product inventory levels.
type InventoryHandler struct {
	svc shopsite.Service
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(svc shopsite.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// UpdateInventoryInput is the request for setting one SKU's quantity.
type UpdateInventoryInput struct {
	SKU  string `path:"sku" minLength:"1" doc:"Product SKU" example:"WIDGET-01"`
	Body struct {
		Quantity int `json:"quantity" minimum:"0" doc:"New on-hand quantity" example:"12"`
	}
}

// UpdateInventoryOutput echoes the accepted update.
type UpdateInventoryOutput struct {
	Body struct {
		SKU      string `json:"sku"      example:"WIDGET-01"`
		Quantity int    `json:"quantity" example:"12"`
		Updated  bool   `json:"updated"  example:"true"`
	}
}

// UpdateInventory imports the new quantity. The client reports only
// success or failure, so any rejection is a 502.
func (h *InventoryHandler) UpdateInventory(
	ctx context.Context,
	input *UpdateInventoryInput,
) (*UpdateInventoryOutput, error) {
	if !h.svc.UpdateInventory(ctx, input.SKU, input.Body.Quantity) {
		return nil, huma.Error502BadGateway("ShopSite rejected inventory update for " + input.SKU)
	}

	out := &UpdateInventoryOutput{}
	out.Body.SKU = input.SKU
	out.Body.Quantity = input.Body.Quantity
	out.Body.Updated = true
	return out, nil
}

// RegisterInventoryRoutes registers the inventory endpoint with the Huma API.
func RegisterInventoryRoutes(api huma.API, h *InventoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "update-inventory",
		Method:      http.MethodPut,
		Path:        "/api/v1/inventory/{sku}",
		Summary:     "Set inventory for a SKU",
		Description: "Posts an XML inventory import for one product to ShopSite.",
		Tags:        []string{"inventory"},
		Errors:      []int{http.StatusBadGateway},
	}, h.UpdateInventory)
}

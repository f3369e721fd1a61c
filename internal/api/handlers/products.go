package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

// ProductsHandler serves pages of the product catalog.
type ProductsHandler struct {
	svc shopsite.Service
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(svc shopsite.Service) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// ListProductsInput holds the paging parameters.
type ListProductsInput struct {
	Limit  int `query:"limit"  default:"50" minimum:"0" maximum:"1000" doc:"Maximum products to return"`
	Offset int `query:"offset" default:"0"  minimum:"0"                doc:"Index of the first product"`
}

// ListProductsOutput is the response body for listing products.
type ListProductsOutput struct {
	Body struct {
		Products []shopsite.Product `json:"products" doc:"One page of the catalog"`
		Count    int                `json:"count"    doc:"Number of products on this page" example:"50"`
	}
}

// ListProducts returns one page of the catalog.
func (h *ProductsHandler) ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error) {
	products, err := h.svc.GetProducts(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, upstreamError(err)
	}
	if products == nil {
		products = []shopsite.Product{}
	}

	out := &ListProductsOutput{}
	out.Body.Products = products
	out.Body.Count = len(products)
	return out, nil
}

// RegisterProductRoutes registers the products endpoint with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List catalog products",
		Description: "Fetches the ShopSite product catalog and returns the requested page.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.ListProducts)
}

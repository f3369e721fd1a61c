// Package handlers implements the HTTP handlers for the shopsite-adapter API.
package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// upstreamError maps a ShopSite client error onto an HTTP error. Local quota
// exhaustion is a 429; everything else came from (or failed to reach) the
// store and is a 502.
func upstreamError(err error) error {
	if errors.Is(err, shopsite.ErrDailyLimitReached) {
		return huma.Error429TooManyRequests("ShopSite daily call limit reached", err)
	}
	return huma.Error502BadGateway("ShopSite API error: " + err.Error())
}

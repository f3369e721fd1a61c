package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

// SessionHandler reports on the client's session without exposing the token.
type SessionHandler struct {
	session *shopsite.Session
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(s *shopsite.Session) *SessionHandler {
	return &SessionHandler{session: s}
}

// SessionOutput is the response body for the session endpoint.
type SessionOutput struct {
	Body struct {
		Authenticated bool       `json:"authenticated"        doc:"Whether an access token is held"`
		TokenType     string     `json:"token_type,omitempty" example:"bearer"`
		Scope         string     `json:"scope,omitempty"      example:"read write"`
		ExpiresAt     *time.Time `json:"expires_at,omitempty" doc:"Token expiry reported by the store, if any"`
	}
}

// GetSession returns the session state.
func (h *SessionHandler) GetSession(_ context.Context, _ *struct{}) (*SessionOutput, error) {
	out := &SessionOutput{}

	tok := h.session.Token()
	if tok == nil {
		return out, nil
	}

	out.Body.Authenticated = true
	out.Body.TokenType = tok.TokenType
	out.Body.Scope = tok.Scope
	if !tok.Expiry.IsZero() {
		exp := tok.Expiry.UTC()
		out.Body.ExpiresAt = &exp
	}
	return out, nil
}

// RegisterSessionRoutes registers the session endpoint with the Huma API.
func RegisterSessionRoutes(api huma.API, h *SessionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/api/v1/session",
		Summary:     "Get ShopSite session state",
		Description: "Reports whether the adapter holds an access token. The token itself is never returned.",
		Tags:        []string{"shopsite"},
	}, h.GetSession)
}

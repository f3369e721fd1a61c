package shopsite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/donaldgifford/shopsite-adapter/internal/metrics"
)

// Authenticate exchanges the configured authorization code for an access
// token and stores it in the session, replacing any previous token. The
// exchange itself is unsigned. On failure the held token is left untouched.
//
// ShopSite authorization codes are single use; a second exchange with the
// same code is expected to fail.
func (c *Client) Authenticate(ctx context.Context) error {
	cfg := &oauth2.Config{
		ClientID: c.creds.ClientID,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.endpointURL(authorizeEndpoint),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)

	tok, err := cfg.Exchange(ctx, c.creds.AuthCode)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		c.logger.Error("authentication failed", "endpoint", authorizeEndpoint, "err", err)

		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			return fmt.Errorf(
				"%w (status %d): %s",
				ErrAuthenticationFailed,
				re.Response.StatusCode,
				describeRetrieveError(re),
			)
		}
		return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	t := &Token{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		Expiry:      tok.Expiry,
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		t.Scope = scope
	}
	switch {
	case tok.ExpiresIn > 0:
		t.ExpiresIn = time.Duration(tok.ExpiresIn) * time.Second
	case !tok.Expiry.IsZero():
		t.ExpiresIn = time.Until(tok.Expiry).Round(time.Second)
	}

	c.session.set(t)
	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	c.logger.Info("authenticated", "token_type", t.TokenType, "expires_in", t.ExpiresIn)

	return nil
}

func describeRetrieveError(re *oauth2.RetrieveError) string {
	if re.ErrorCode != "" {
		if re.ErrorDescription != "" {
			return re.ErrorCode + " - " + re.ErrorDescription
		}
		return re.ErrorCode
	}
	return string(re.Body)
}

// ensureSession returns the held token, authenticating first if none is
// held. If the exchange fails but a concurrent caller already stored a token
// (the authorization code was spent by that caller), the failure is logged
// and the held token is used.
func (c *Client) ensureSession(ctx context.Context) (*Token, error) {
	if tok := c.session.Token(); tok != nil {
		return tok, nil
	}

	if err := c.Authenticate(ctx); err != nil {
		if tok := c.session.Token(); tok != nil {
			c.logger.Warn("authentication raced with a concurrent exchange; using held token", "err", err)
			return tok, nil
		}
		return nil, err
	}

	tok := c.session.Token()
	if tok == nil {
		return nil, ErrAuthenticationRequired
	}
	return tok, nil
}

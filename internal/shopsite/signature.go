package shopsite

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is what the platform verifies
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

const nonceBytes = 16

// BaseString builds the canonical signature base: the access token, the
// timestamp, the nonce and the params sorted by key in byte order as
// key=value, all joined by newlines.
//
// Keys and values are not escaped. A value containing a newline makes the
// base ambiguous, so callers must not pass one.
func BaseString(params map[string]string, token *Token, timestamp, nonce string) (string, error) {
	if token == nil {
		return "", ErrAuthenticationRequired
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}

	return strings.Join([]string{
		token.AccessToken,
		timestamp,
		nonce,
		strings.Join(pairs, "\n"),
	}, "\n"), nil
}

// Sign returns the lowercase hex HMAC-SHA1 of the signature base, keyed by
// the client secret.
func Sign(
	secret string,
	params map[string]string,
	token *Token,
	timestamp, nonce string,
) (string, error) {
	base, err := BaseString(params, token, timestamp, nonce)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(base))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Nonce returns 16 random bytes from r as lowercase hex.
func Nonce(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, nonceBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Timestamp renders t as decimal seconds since the Unix epoch.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// signedRequest is the per-call signing material. It is never reused.
type signedRequest struct {
	token     *Token
	timestamp string
	nonce     string
	signature string
}

// sign generates a fresh nonce and timestamp and signs params with tok.
func (c *Client) sign(params map[string]string, tok *Token) (*signedRequest, error) {
	nonce, err := Nonce(c.random)
	if err != nil {
		return nil, err
	}
	ts := Timestamp(c.nowFunc())

	sig, err := Sign(c.creds.ClientSecret, params, tok, ts, nonce)
	if err != nil {
		return nil, fmt.Errorf("signing request: %w", err)
	}

	return &signedRequest{
		token:     tok,
		timestamp: ts,
		nonce:     nonce,
		signature: sig,
	}, nil
}

package shopsite

import "errors"

var (
	// ErrAuthenticationRequired is returned when a request is signed without
	// a session token. Signed calls authenticate first, so reaching it means
	// a caller bypassed the client.
	ErrAuthenticationRequired = errors.New("no session token; authenticate first")

	// ErrAuthenticationFailed is returned when the authorization-code exchange
	// is rejected or its response cannot be used. Authorization codes are
	// single use, so this is not retryable with the same code.
	ErrAuthenticationFailed = errors.New("authorization exchange failed")

	// ErrTransport wraps network failures and non-2xx responses.
	ErrTransport = errors.New("shopsite transport error")

	// ErrMalformedResponse is returned when a response body is not parseable XML.
	ErrMalformedResponse = errors.New("malformed XML response")

	// ErrInvalidArgument is returned before any request is made when an
	// operation argument is out of range.
	ErrInvalidArgument = errors.New("invalid argument")
)

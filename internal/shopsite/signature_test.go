package shopsite_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

func TestBaseString_KnownVector(t *testing.T) {
	t.Parallel()

	tok := &shopsite.Token{AccessToken: "token123", TokenType: "Bearer"}
	params := map[string]string{"param1": "value1", "param2": "value2"}

	base, err := shopsite.BaseString(params, tok, "1234567890", "nonce123")
	require.NoError(t, err)
	assert.Equal(t, "token123\n1234567890\nnonce123\nparam1=value1\nparam2=value2", base)

	sig, err := shopsite.Sign("secret_key", params, tok, "1234567890", "nonce123")
	require.NoError(t, err)
	// HMAC-SHA1 of the base string under secret_key, computed with openssl.
	assert.Equal(t, "c9e65274b9d6bb263c377fd70dda9e7e1a7670d6", sig)
	assert.Len(t, sig, 40)
	assert.Regexp(t, `^[0-9a-f]{40}$`, sig)
}

func TestSign_Deterministic(t *testing.T) {
	t.Parallel()

	tok := &shopsite.Token{AccessToken: "abc"}
	params := map[string]string{"dbname": "orders", "version": "12.0"}

	first, err := shopsite.Sign("s3cret", params, tok, "1700000000", "n1")
	require.NoError(t, err)

	for range 10 {
		again, err := shopsite.Sign("s3cret", params, tok, "1700000000", "n1")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSign_KeyOrderIndependent(t *testing.T) {
	t.Parallel()

	tok := &shopsite.Token{AccessToken: "abc"}

	ab := map[string]string{}
	ab["a"] = "1"
	ab["b"] = "2"

	ba := map[string]string{}
	ba["b"] = "2"
	ba["a"] = "1"

	s1, err := shopsite.Sign("k", ab, tok, "1", "n")
	require.NoError(t, err)
	s2, err := shopsite.Sign("k", ba, tok, "1", "n")
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
}

func TestBaseString_ByteOrderSort(t *testing.T) {
	t.Parallel()

	tok := &shopsite.Token{AccessToken: "t"}
	params := map[string]string{
		"b":     "2",
		"B":     "1",
		"a":     "3",
		"a_b":   "4",
		"aB":    "5",
		"start": "6",
	}

	base, err := shopsite.BaseString(params, tok, "ts", "n")
	require.NoError(t, err)
	// Uppercase sorts before lowercase, '_' (0x5f) before lowercase letters.
	assert.Equal(t, "t\nts\nn\nB=1\na=3\naB=5\na_b=4\nb=2\nstart=6", base)
}

func TestSign_SensitiveToEveryInput(t *testing.T) {
	t.Parallel()

	tok := &shopsite.Token{AccessToken: "tok"}
	params := map[string]string{"k": "v"}

	base, err := shopsite.Sign("secret", params, tok, "1", "n")
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		params map[string]string
		token  string
		ts     string
		nonce  string
	}{
		{name: "secret", secret: "other", params: params, token: "tok", ts: "1", nonce: "n"},
		{name: "param value", secret: "secret", params: map[string]string{"k": "w"}, token: "tok", ts: "1", nonce: "n"},
		{name: "extra param", secret: "secret", params: map[string]string{"k": "v", "x": "y"}, token: "tok", ts: "1", nonce: "n"},
		{name: "token", secret: "secret", params: params, token: "tok2", ts: "1", nonce: "n"},
		{name: "timestamp", secret: "secret", params: params, token: "tok", ts: "2", nonce: "n"},
		{name: "nonce", secret: "secret", params: params, token: "tok", ts: "1", nonce: "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := shopsite.Sign(
				tt.secret,
				tt.params,
				&shopsite.Token{AccessToken: tt.token},
				tt.ts,
				tt.nonce,
			)
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}
}

func TestSign_EmptyParams(t *testing.T) {
	t.Parallel()

	tok := &shopsite.Token{AccessToken: "tok"}

	base, err := shopsite.BaseString(nil, tok, "1", "n")
	require.NoError(t, err)
	assert.Equal(t, "tok\n1\nn\n", base)
}

func TestSign_NoToken(t *testing.T) {
	t.Parallel()

	_, err := shopsite.Sign("secret", map[string]string{"a": "1"}, nil, "1", "n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shopsite.ErrAuthenticationRequired))

	_, err = shopsite.BaseString(nil, nil, "1", "n")
	assert.ErrorIs(t, err, shopsite.ErrAuthenticationRequired)
}

func TestNonce(t *testing.T) {
	t.Parallel()

	t.Run("fixed source", func(t *testing.T) {
		t.Parallel()

		src := bytes.NewReader(bytes.Repeat([]byte{0xab}, 16))
		n, err := shopsite.Nonce(src)
		require.NoError(t, err)
		assert.Equal(t, "abababababababababababababababab", n)
	})

	t.Run("crypto source is unique", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]struct{})
		for range 100 {
			n, err := shopsite.Nonce(nil)
			require.NoError(t, err)
			assert.Regexp(t, `^[0-9a-f]{32}$`, n)
			_, dup := seen[n]
			assert.False(t, dup)
			seen[n] = struct{}{}
		}
	})

	t.Run("short source", func(t *testing.T) {
		t.Parallel()

		_, err := shopsite.Nonce(bytes.NewReader([]byte{1, 2, 3}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generating nonce")
	})
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	ts := shopsite.Timestamp(time.Unix(1234567890, 999).In(time.FixedZone("X", 3600)))
	assert.Equal(t, "1234567890", ts)
}

package handlers_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, data []byte, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, v), "body: %s", data)
}

// stripSchema drops the "$schema" link huma adds to JSON response bodies.
func stripSchema(t *testing.T, data []byte) string {
	t.Helper()

	var m map[string]any
	decodeBody(t, data, &m)
	delete(m, "$schema")

	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}

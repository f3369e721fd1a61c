// Package logger builds the adapter's *slog.Logger with a configurable level
// and output format, redacting credential-bearing attributes.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Redacted replaces the value of any attribute whose key is a credential.
const Redacted = "[REDACTED]"

// sensitiveKeys are attribute keys never written in the clear. Keys are
// compared case-insensitively.
var sensitiveKeys = map[string]struct{}{
	"client_secret":   {},
	"auth_code":       {},
	"code":            {},
	"password":        {},
	"pass":            {},
	"access_token":    {},
	"oauth_token":     {},
	"oauth_signature": {},
}

// New creates a *slog.Logger writing to stderr.
// Level: "debug", "info", "warn", "error" (default: "info").
// Format: "json" or "text" (default: "text").
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a *slog.Logger writing to w.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel converts a level string to slog.Level. Matching ignores case
// and accepts "warning" for warn. Everything unrecognized returns LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, Redacted)
	}
	return a
}

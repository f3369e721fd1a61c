package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// probePaths are polled by orchestrators. After the first success is logged,
// further successes are suppressed; failures are always logged at WARN.
var probePaths = map[string]struct{}{
	"/healthz": {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu       sync.Mutex
		probedOK = make(map[string]bool)
	)

	// firstSuccess reports whether this is the first successful probe of path.
	firstSuccess := func(path string) bool {
		mu.Lock()
		defer mu.Unlock()
		if probedOK[path] {
			return false
		}
		probedOK[path] = true
		return true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			level := slog.LevelInfo

			if _, probe := probePaths[path]; probe {
				if status >= 200 && status < 300 {
					if !firstSuccess(path) {
						return err
					}
				} else {
					level = slog.LevelWarn
				}
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

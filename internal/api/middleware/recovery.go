package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

const stackBufSize = 4096

// Recovery returns Echo middleware that turns a handler panic into a logged
// stack trace and a 500 response. The request ID set by RequestLog, if any,
// is echoed in both so the two can be correlated.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, stackBufSize)
				n := runtime.Stack(buf, false)
				reqID, _ := c.Get("request_id").(string)

				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"request_id", reqID,
					"stack", string(buf[:n]),
				)

				body := map[string]string{"error": "internal server error"}
				if reqID != "" {
					body["request_id"] = reqID
				}
				err = c.JSON(http.StatusInternalServerError, body)
			}()
			return next(c)
		}
	}
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Healthz returns 200 if the process is running. It does not contact the
// store: the session is established lazily by the first data call.
func Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

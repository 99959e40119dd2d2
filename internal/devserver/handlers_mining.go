// handlers_mining.go - Process-mining report handlers
package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HandleCaseRoots serves the fixture case-root report.
func (h *Handler) HandleCaseRoots(c echo.Context) error {
	if h.sessionToken(c) == "" {
		return fail(c, http.StatusUnauthorized, "missing or invalid token")
	}
	return c.JSON(http.StatusOK, h.mining)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}

// routes.go - Route registration
package devserver

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the stub backend's endpoints onto e. The paths
// mirror the production backend exactly so the client needs no special
// casing to talk to the stub.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)

	auth := e.Group("/api/v1/auth")
	auth.POST("/login", h.HandleLogin)
	auth.POST("/logout", h.HandleLogout)
	auth.POST("/signup", h.HandleSignUp)
	auth.POST("/forgot-password", h.HandleForgotPassword)
	auth.POST("/reset-password", h.HandleResetPassword)

	e.POST("/api/v1/csv_datasource/upload", h.HandleUploadCSV)

	e.GET("/process-mining/case-roots", h.HandleCaseRoots)
}

// handlers_auth.go - Authentication endpoint handlers
package devserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flowtrace/flowtrace/internal/models"
)

// Handler serves the stub backend's HTTP API.
type Handler struct {
	store   *Store
	mining  models.CaseRootsResponse
	version string
}

// NewHandler creates a Handler around store, serving the fixture
// case-root report.
func NewHandler(store *Store, version string) *Handler {
	return &Handler{
		store:   store,
		mining:  FixtureCaseRoots(),
		version: version,
	}
}

// bearerToken extracts the credential from an Authorization header.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// sessionToken returns the caller's valid session token, or "".
func (h *Handler) sessionToken(c echo.Context) string {
	token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		return ""
	}
	if _, ok := h.store.LookupToken(token); !ok {
		return ""
	}
	return token
}

// HandleLogin verifies credentials and issues a session token.
func (h *Handler) HandleLogin(c echo.Context) error {
	var payload models.LoginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if payload.Email == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	// RememberMe is accepted and ignored; token lifetime is not
	// modeled by the stub.
	user, token, err := h.store.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: models.Token{AccessToken: token},
		User:  *user,
	})
}

// HandleSignUp registers an account and issues a session token.
func (h *Handler) HandleSignUp(c echo.Context) error {
	var payload models.SignUpPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if payload.Email == "" || payload.Password == "" || payload.FullName == "" {
		return fail(c, http.StatusBadRequest, "email, full_name, and password are required")
	}

	user, token, err := h.store.Register(payload)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return fail(c, http.StatusConflict, "email already registered")
		}
		return fail(c, http.StatusInternalServerError, "registration failed")
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: models.Token{AccessToken: token},
		User:  *user,
	})
}

// HandleLogout revokes the caller's session token. Idempotent: a
// missing or unknown token still acknowledges.
func (h *Handler) HandleLogout(c echo.Context) error {
	token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token != "" {
		h.store.RevokeToken(token)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleForgotPassword issues a recovery token. The response never
// reveals whether the account exists; the stub prints the token to its
// log so local flows can be completed by hand.
func (h *Handler) HandleForgotPassword(c echo.Context) error {
	var payload struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if payload.Email == "" {
		return fail(c, http.StatusBadRequest, "email is required")
	}

	if token, ok := h.store.IssueRecoveryToken(payload.Email); ok {
		fmt.Printf("[devserver] recovery token for %s: %s\n", payload.Email, token)
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "ok"})
}

// HandleResetPassword consumes a recovery token and sets a new password.
func (h *Handler) HandleResetPassword(c echo.Context) error {
	recovery := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if recovery == "" {
		return fail(c, http.StatusUnauthorized, "missing recovery token")
	}

	var payload struct {
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if payload.NewPassword == "" {
		return fail(c, http.StatusBadRequest, "new_password is required")
	}

	if err := h.store.ResetPassword(recovery, payload.NewPassword); err != nil {
		return fail(c, http.StatusUnauthorized, "invalid or expired recovery token")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

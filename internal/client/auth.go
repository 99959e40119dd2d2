// auth.go - Authentication operations against the Flowtrace backend
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/flowtrace/flowtrace/internal/models"
)

// Login authenticates with email and password. HTTP 401 maps to
// ErrInvalidCredentials and leaves the session store untouched; on
// success the token and user profile are persisted together.
func (c *Client) Login(ctx context.Context, payload models.LoginPayload) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.postJSON(ctx, "/api/v1/auth/login", payload, "", &out); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := c.session.SetSession(out.Token.AccessToken, &out.User); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return &out, nil
}

// SignUp registers a new account. On success the token and user profile
// are persisted together, the same contract as Login.
func (c *Client) SignUp(ctx context.Context, payload models.SignUpPayload) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.postJSON(ctx, "/api/v1/auth/signup", payload, "", &out); err != nil {
		return nil, err
	}

	if err := c.session.SetSession(out.Token.AccessToken, &out.User); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return &out, nil
}

// Logout revokes the session server-side, then clears the local session
// regardless of how the HTTP call went: local state is always cleaned
// up first, the server error (if any) is propagated after. Calling it
// while already signed out sends no Authorization header and succeeds.
func (c *Client) Logout(ctx context.Context) error {
	token, _ := c.session.Token()

	httpErr := c.postJSON(ctx, "/api/v1/auth/logout", nil, token, nil)

	if err := c.session.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return httpErr
}

// ForgotPassword requests a password-recovery email. No local state
// changes.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{Email: email}

	return c.postJSON(ctx, "/api/v1/auth/forgot-password", payload, "", nil)
}

// ResetPassword sets a new password using the short-lived recovery
// token from the forgot-password flow. The recovery token is distinct
// from the session token; no local state changes.
func (c *Client) ResetPassword(ctx context.Context, newPassword, recoveryToken string) error {
	payload := struct {
		NewPassword string `json:"new_password"`
	}{NewPassword: newPassword}

	return c.postJSON(ctx, "/api/v1/auth/reset-password", payload, recoveryToken, nil)
}

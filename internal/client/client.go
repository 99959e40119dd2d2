// Package client implements the authenticated HTTP client layer for
// the Flowtrace backend: the auth operations, CSV datasource upload,
// and process-mining reads. Every operation is attempted exactly once;
// whether to retry is the caller's decision. The session store is an
// injected dependency, never ambient state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/flowtrace/flowtrace/internal/session"
)

// Client talks to a single Flowtrace backend origin.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Store
}

// New creates a Client against baseURL, persisting auth state in store.
// The default http.Client carries no timeout; use NewWithHTTPClient or
// a request context to impose deadlines.
func New(baseURL string, store session.Store) *Client {
	return NewWithHTTPClient(baseURL, store, &http.Client{})
}

// NewWithHTTPClient creates a Client with a caller-supplied transport.
func NewWithHTTPClient(baseURL string, store session.Store, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		session: store,
	}
}

// Session exposes the injected session store.
func (c *Client) Session() session.Store {
	return c.session
}

// postJSON issues one POST with an optional JSON payload and optional
// bearer token, decoding a 2xx response into out (out may be nil).
func (c *Client) postJSON(ctx context.Context, path string, payload any, bearer string, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.do(req, "POST "+path, out)
}

// getJSON issues one authenticated GET and decodes a 2xx response.
func (c *Client) getJSON(ctx context.Context, path string, bearer string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.do(req, "GET "+path, out)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newHTTPError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func newHTTPError(resp *http.Response) *HTTPError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &HTTPError{
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(raw)),
	}
}

// errors.go - Typed error taxonomy for backend calls
package client

import (
	"errors"
	"fmt"
)

// Sentinel errors matchable with errors.Is.
var (
	// ErrInvalidCredentials is reported by Login on HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is reported locally, before any network call,
	// when an operation requires a token and none is present.
	ErrUnauthenticated = errors.New("not authenticated")
)

// HTTPError is any unexpected non-2xx response.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Status)
}

// UploadError carries the backend's detail message for a failed CSV
// upload. Detail is empty when the backend supplied none.
type UploadError struct {
	FileName string
	Status   int
	Detail   string
}

func (e *UploadError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("uploading %s: %s", e.FileName, e.Detail)
	}
	return fmt.Sprintf("uploading %s: upload failed with status %d", e.FileName, e.Status)
}

// TransportError wraps a network-level failure (DNS, connect, context
// cancellation). The underlying error is reachable through Unwrap.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

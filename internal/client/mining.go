// mining.go - Process-mining reads
package client

import (
	"context"

	"github.com/flowtrace/flowtrace/internal/models"
)

// FetchCaseRoots retrieves the backend-computed case-root report.
// Requires an authenticated session; with no token present it reports
// ErrUnauthenticated without issuing a network call. The report is
// fetched fresh every time, there is no client-side cache.
func (c *Client) FetchCaseRoots(ctx context.Context) (*models.CaseRootsResponse, error) {
	token, ok := c.session.Token()
	if !ok {
		return nil, ErrUnauthenticated
	}

	var out models.CaseRootsResponse
	if err := c.getJSON(ctx, "/process-mining/case-roots", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// upload.go - CSV datasource upload
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/flowtrace/flowtrace/internal/models"
)

const uploadPath = "/api/v1/csv_datasource/upload"

// UploadCSV uploads the given files one at a time, in input order, one
// multipart request per file. Processing is strictly sequential and
// fails fast: the first file that errors aborts the batch and later
// files are not attempted. The results collected before the failure are
// returned alongside the error so the caller can see partial progress.
//
// Requires an authenticated session; with no token present it reports
// ErrUnauthenticated without touching the network. No size or type
// validation happens client-side.
func (c *Client) UploadCSV(ctx context.Context, paths []string) ([]models.UploadResult, error) {
	token, ok := c.session.Token()
	if !ok {
		return nil, ErrUnauthenticated
	}

	results := make([]models.UploadResult, 0, len(paths))
	for _, path := range paths {
		res, err := c.uploadOne(ctx, token, path)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

func (c *Client) uploadOne(ctx context.Context, token, path string) (*models.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "POST " + uploadPath, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure struct {
			Detail string `json:"detail"`
		}
		json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&failure)
		return nil, &UploadError{
			FileName: name,
			Status:   resp.StatusCode,
			Detail:   failure.Detail,
		}
	}

	var out models.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	return &out.Data, nil
}

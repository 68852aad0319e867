// Package client is the HTTP client for the atlasd country API. It is the
// only way the browse TUI and the countries subcommands talk to the service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rshade/atlasd/internal/directory"
)

// defaultTimeout bounds each request when the caller does not supply one.
const defaultTimeout = 10 * time.Second

// StatusError is returned for unexpected non-2xx responses.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.Path, e.Status)
}

// Client calls the atlasd API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the API rooted at baseURL. A zero timeout falls
// back to the package default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// List fetches every country record, in dataset order.
func (c *Client) List(ctx context.Context) ([]directory.CountryRecord, error) {
	var records []directory.CountryRecord
	if err := c.getJSON(ctx, "/countries", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetExpanded fetches the record for code with its borders expanded.
// A 404 response is reported as directory.ErrNotFound.
func (c *Client) GetExpanded(ctx context.Context, code string) (directory.Expanded, error) {
	var expanded directory.Expanded
	path := "/countries/" + url.PathEscape(code)
	if err := c.getJSON(ctx, path, &expanded); err != nil {
		return directory.Expanded{}, err
	}
	return expanded, nil
}

// getJSON performs a GET against path and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s response: %w", path, err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return directory.ErrNotFound
	default:
		return &StatusError{Status: resp.StatusCode, Path: path}
	}
}

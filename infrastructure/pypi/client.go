// Package pypi queries the public package index for the latest published
// version of a package.
package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/driverdata/dcvt-devkit/domain"
)

const (
	// DefaultBaseURL is the public index's JSON API root.
	DefaultBaseURL = "https://pypi.org"

	requestTimeout = 15 * time.Second
)

// Client fetches package metadata from the index's JSON API.
// Errors returned here are informational; callers degrade to local-only
// data instead of failing the run.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ domain.Index = (*Client)(nil)

// New creates a client against the public index.
func New() *Client {
	return NewWithBaseURL(DefaultBaseURL)
}

// NewWithBaseURL creates a client against a custom index root. Used by
// tests and private mirrors.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// packageResponse mirrors the slice of the /pypi/{name}/json payload we need.
type packageResponse struct {
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"info"`
}

// LatestVersion fetches the latest published version of the named package.
func (c *Client) LatestVersion(
	ctx context.Context,
	name string,
) (*domain.RemotePackageInfo, error) {
	url := fmt.Sprintf("%s/pypi/%s/json", c.baseURL, domain.NormalizeName(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query package index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("package index returned status %d for %q", resp.StatusCode, name)
	}

	var payload packageResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("failed to parse package index response: %w", decodeErr)
	}

	if payload.Info.Version == "" {
		return nil, fmt.Errorf("package index returned no version for %q", name)
	}

	return &domain.RemotePackageInfo{
		Name:   payload.Info.Name,
		Latest: payload.Info.Version,
	}, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

var errMissingProducts = errors.New("response has no products array")

// Client fetches the product listing from a single fixed endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a client for endpoint. A nil httpClient falls back to
// http.DefaultClient; no timeout is applied unless the caller's context or
// client carries one.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Endpoint returns the URL queried by Fetch.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch issues one GET and decodes the listing. Every failure is returned as
// a *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: "build request", URL: c.endpoint, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "request", URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Op: "response", URL: c.endpoint, Status: resp.StatusCode}
	}
	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &FetchError{Op: "decode", URL: c.endpoint, Err: err}
	}
	if body.Products == nil {
		return nil, &FetchError{Op: "decode", URL: c.endpoint, Err: errMissingProducts}
	}
	return Clone(*body.Products), nil
}

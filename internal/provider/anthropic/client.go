// Package anthropic implements the Claude upstream provider.
package anthropic

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nilmandal/aiproxy/internal/types"
)

// DefaultBaseURL is the Anthropic messages endpoint.
const DefaultBaseURL = "https://api.anthropic.com/v1/messages"

// apiVersion is the pinned anthropic-version header value.
const apiVersion = "2023-06-01"

// Client relays requests to the Anthropic messages API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates a Claude client for the production endpoint.
// An empty apiKey produces a client whose Forward fails with ErrNoAPIKey.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, DefaultBaseURL)
}

// NewWithBaseURL creates a Claude client against a custom endpoint.
// Used by tests to point at a mock upstream.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		// No Timeout: relay semantics are to wait for upstream;
		// cancellation comes from the request context.
		http: &http.Client{},
	}
}

// Name returns the route identifier.
func (c *Client) Name() string {
	return "claude"
}

// DisplayName returns the human-facing provider name.
func (c *Client) DisplayName() string {
	return "Claude"
}

// BaseURL returns the Anthropic API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Available reports whether a credential is configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Forward relays a raw JSON body to the Anthropic messages endpoint.
func (c *Client) Forward(ctx context.Context, body []byte) (*types.ProxyResult, error) {
	if !c.Available() {
		return nil, types.ErrNoAPIKey
	}

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &types.ProxyResult{
		StatusCode:  resp.StatusCode,
		Body:        respBody,
		ContentType: contentTypeOrJSON(resp),
		Duration:    time.Since(startTime),
	}, nil
}

// setHeaders adds the Claude auth headers. The bearer Authorization is
// redundant with x-api-key but some Anthropic-compatible gateways only
// read one of the two, so both are sent.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// contentTypeOrJSON returns the upstream Content-Type, defaulting to JSON.
func contentTypeOrJSON(resp *http.Response) string {
	ct := resp.Header.Get("Content-Type")
	if strings.TrimSpace(ct) == "" {
		return "application/json"
	}
	return ct
}

// Package gemini implements the Gemini provider placeholder.
//
// The route exists for API-shape parity with the other providers, but
// the upstream integration is not wired up yet. Forward answers with a
// fixed payload regardless of the request body or credential state.
package gemini

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nilmandal/aiproxy/internal/types"
)

// DefaultBaseURL is the Gemini API base; kept for interface parity even
// though nothing is forwarded there yet.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// placeholder is the fixed response body for the unimplemented relay.
var placeholder = map[string]string{
	"text":  "Gemini API proxy is available but requires additional setup",
	"model": "gemini-pro",
}

// Client answers Gemini proxy requests with the placeholder payload.
type Client struct {
	apiKey string
}

// New creates a Gemini placeholder client.
func New(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

// Name returns the route identifier.
func (c *Client) Name() string {
	return "gemini"
}

// DisplayName returns the human-facing provider name.
func (c *Client) DisplayName() string {
	return "Gemini"
}

// BaseURL returns the Gemini API endpoint.
func (c *Client) BaseURL() string {
	return DefaultBaseURL
}

// Available reports whether a credential is configured. The placeholder
// ignores the credential, but /health still reports its presence.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Forward returns the fixed placeholder payload with status 200.
func (c *Client) Forward(ctx context.Context, body []byte) (*types.ProxyResult, error) {
	payload, err := json.Marshal(placeholder)
	if err != nil {
		return nil, err
	}

	return &types.ProxyResult{
		StatusCode:  http.StatusOK,
		Body:        payload,
		ContentType: "application/json",
	}, nil
}

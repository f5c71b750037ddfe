package types

import (
	"context"
	"errors"
	"time"
)

// ErrNoAPIKey is returned when no API key is configured for a provider.
var ErrNoAPIKey = errors.New("no API key configured")

// Provider is a single upstream AI completion API.
type Provider interface {
	// Name returns the route identifier (e.g. "claude")
	Name() string

	// DisplayName returns the human-facing provider name used in
	// error payloads (e.g. "Claude")
	DisplayName() string

	// BaseURL returns the provider's API endpoint
	BaseURL() string

	// Available reports whether a credential is configured
	Available() bool

	// Forward relays a raw JSON body to the upstream endpoint with the
	// provider's auth headers and returns the upstream reply verbatim.
	// An upstream non-2xx status is data, not an error; Forward only
	// fails on transport problems or a missing credential.
	Forward(ctx context.Context, body []byte) (*ProxyResult, error)
}

// ProxyResult is a relayed upstream response.
type ProxyResult struct {
	// StatusCode from upstream, passed through unmodified
	StatusCode int

	// Body is the raw upstream response body
	Body []byte

	// ContentType from upstream (defaults to application/json)
	ContentType string

	// Duration of the upstream round trip
	Duration time.Duration
}

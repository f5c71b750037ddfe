// Package proxy implements the /proxy/* relay handlers.
package proxy

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"

	"github.com/nilmandal/aiproxy/internal/tokenizer"
	"github.com/nilmandal/aiproxy/internal/types"
	"github.com/nilmandal/aiproxy/internal/usage"
)

// Handlers holds the dependencies for proxy HTTP handlers.
type Handlers struct {
	Providers  map[string]types.Provider
	Tokenizer  tokenizer.Tokenizer
	Usage      *usage.Tracker
	TokenCache *ristretto.Cache[string, int]
}

// New creates a new instance of proxy handlers.
func New(providers map[string]types.Provider, tok tokenizer.Tokenizer, tracker *usage.Tracker, cache *ristretto.Cache[string, int]) *Handlers {
	return &Handlers{
		Providers:  providers,
		Tokenizer:  tok,
		Usage:      tracker,
		TokenCache: cache,
	}
}

// countPromptTokens estimates prompt tokens for a raw body, caching by
// body hash so repeated identical prompts are not re-encoded. Counting
// is best-effort: any failure yields zero, never an error.
func (h *Handlers) countPromptTokens(body []byte) int {
	if h.Tokenizer == nil {
		return 0
	}

	var key string
	if h.TokenCache != nil {
		key = strconv.FormatUint(xxhash.Sum64(body), 16)
		if tokens, found := h.TokenCache.Get(key); found {
			return tokens
		}
	}

	req, err := types.ParseRelayRequest(body)
	if err != nil {
		return 0
	}
	tokens, err := h.Tokenizer.CountRequest(req)
	if err != nil {
		return 0
	}

	if h.TokenCache != nil {
		h.TokenCache.Set(key, tokens, 1)
	}
	return tokens
}

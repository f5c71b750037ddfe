// Package handler composes the HTTP handler groups.
package handler

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/nilmandal/aiproxy/internal/config"
	"github.com/nilmandal/aiproxy/internal/tokenizer"
	"github.com/nilmandal/aiproxy/internal/transport/http/handler/infra"
	"github.com/nilmandal/aiproxy/internal/transport/http/handler/proxy"
	"github.com/nilmandal/aiproxy/internal/types"
	"github.com/nilmandal/aiproxy/internal/usage"
)

// Repo composes all domain-specific handlers.
type Repo struct {
	Proxy *proxy.Handlers
	Infra *infra.Handlers
}

// NewRepo creates a new instance of the composed handler repository.
func NewRepo(cfg *config.Config, providers map[string]types.Provider, tok tokenizer.Tokenizer, tracker *usage.Tracker, cache *ristretto.Cache[string, int]) *Repo {
	startTime := time.Now()
	return &Repo{
		Proxy: proxy.New(providers, tok, tracker, cache),
		Infra: infra.New(cfg, tracker, startTime),
	}
}

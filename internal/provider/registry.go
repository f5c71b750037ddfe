// Package provider wires up the upstream AI providers.
package provider

import (
	"github.com/nilmandal/aiproxy/internal/config"
	"github.com/nilmandal/aiproxy/internal/provider/anthropic"
	"github.com/nilmandal/aiproxy/internal/provider/gemini"
	"github.com/nilmandal/aiproxy/internal/provider/openai"
	"github.com/nilmandal/aiproxy/internal/types"
)

// NewProviders returns the available upstream providers keyed by route
// identifier. Every provider is always present; a missing credential
// shows up as Available() == false, not as a missing map entry.
func NewProviders(cfg *config.Config) map[string]types.Provider {
	return map[string]types.Provider{
		"claude": anthropic.New(cfg.ClaudeAPIKey),
		"openai": openai.New(cfg.OpenAIAPIKey),
		"gemini": gemini.New(cfg.GeminiAPIKey),
	}
}

package infra

import (
	"net/http"
	"time"

	"github.com/nilmandal/aiproxy/internal/transport/http/handler/shared"
	"github.com/nilmandal/aiproxy/internal/types"
	"github.com/nilmandal/aiproxy/internal/version"
)

// RootStatus returns the static service descriptor at /.
func (h *Handlers) RootStatus(w http.ResponseWriter, r *http.Request) {
	endpoints := []string{
		"/health",
		"/proxy/claude",
		"/proxy/openai",
		"/proxy/gemini",
	}
	if h.Config.EnableStats {
		endpoints = append(endpoints, "/stats")
	}

	shared.WriteJSON(w, map[string]any{
		"service":   "AI API Proxy",
		"status":    "active",
		"version":   version.Version,
		"endpoints": endpoints,
	}, http.StatusOK)
}

// HealthCheck reports which provider credentials are configured.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, map[string]any{
		"status": "healthy",
		"available_models": map[string]bool{
			"claude": h.Config.HasClaude(),
			"openai": h.Config.HasOpenAI(),
			"gemini": h.Config.HasGemini(),
		},
	}, http.StatusOK)
}

// Stats returns the in-memory usage aggregates.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, map[string]any{
		"uptime_seconds": int64(time.Since(h.StartTime).Seconds()),
		"usage":          h.Usage.Snapshot(),
	}, http.StatusOK)
}

// NotFound answers every unmatched route with the JSON 404 payload.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	types.WriteError(w, http.StatusNotFound, types.ErrNotFound())
}

package app

import (
	"log/slog"
	"net/http"

	"github.com/nilmandal/aiproxy/internal/config"
	"github.com/nilmandal/aiproxy/internal/transport/http/handler"
	"github.com/nilmandal/aiproxy/internal/transport/http/middleware"
)

// RouterOptions configures the HTTP router behavior.
type RouterOptions struct {
	Config *config.Config
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router with all application
// routes. Returns an http.Handler with middleware applied.
func NewRouter(repo *handler.Repo, opts *RouterOptions) http.Handler {
	mux := http.NewServeMux()

	// Service descriptor and health
	mux.HandleFunc("GET /{$}", repo.Infra.RootStatus)
	mux.HandleFunc("GET /health", repo.Infra.HealthCheck)

	// Relay routes
	mux.HandleFunc("POST /proxy/claude", repo.Proxy.Claude)
	mux.HandleFunc("POST /proxy/openai", repo.Proxy.OpenAI)
	mux.HandleFunc("POST /proxy/gemini", repo.Proxy.Gemini)

	// Usage stats (if enabled)
	if opts.Config.EnableStats {
		mux.HandleFunc("GET /stats", repo.Infra.Stats)
	}

	// Everything else, any method, answers the JSON 404. Registering
	// the bare "/" pattern also keeps ServeMux from emitting its own
	// plain-text 405 on method mismatches.
	mux.HandleFunc("/", repo.Infra.NotFound)

	// Apply middleware chain (order: outer to inner)
	var h http.Handler = mux

	// Request logging (if logger provided)
	if opts.Logger != nil {
		h = middleware.RequestLogger(opts.Logger)(h)
	}

	// Request ID (always applied)
	h = middleware.RequestID(h)

	// CORS outermost so every response, including preflight, carries
	// the headers
	h = middleware.CORS(h)

	return h
}

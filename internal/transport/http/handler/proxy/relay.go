package proxy

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/nilmandal/aiproxy/internal/transport/http/middleware"
	"github.com/nilmandal/aiproxy/internal/types"
	"github.com/nilmandal/aiproxy/internal/usage"
)

// Claude forwards the request body to the Anthropic messages endpoint.
func (h *Handlers) Claude(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, "claude")
}

// OpenAI forwards the request body to the OpenAI chat completions endpoint.
func (h *Handlers) OpenAI(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, "openai")
}

// Gemini answers with the provider's fixed placeholder. Unlike the real
// relays there is no credential gate and no body requirement.
func (h *Handlers) Gemini(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	p := h.Providers["gemini"]

	result, err := p.Forward(r.Context(), nil)
	if err != nil {
		types.WriteError(w, http.StatusInternalServerError, types.ErrServer(err))
		return
	}

	writeRelayed(w, result)
	h.observe(r, p.Name(), "gemini-pro", result.StatusCode, 0, "", startTime)
}

// relay implements the forwarding algorithm shared by the Claude and
// OpenAI routes: credential gate, syntactic JSON check, upstream POST,
// verbatim pass-through of the upstream status and body.
func (h *Handlers) relay(w http.ResponseWriter, r *http.Request, name string) {
	startTime := time.Now()
	p := h.Providers[name]

	if !p.Available() {
		apiErr := types.ErrMissingCredential(p.DisplayName())
		types.WriteError(w, http.StatusInternalServerError, apiErr)
		h.observe(r, name, "", http.StatusInternalServerError, 0, apiErr.Error, startTime)
		return
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.relayError(w, r, name, err, startTime)
		return
	}
	r.Body.Close()

	// Syntactic JSON check only; the body is forwarded re-serialized
	// from the parsed value, never validated against provider schemas.
	var parsed any
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		h.relayError(w, r, name, err, startTime)
		return
	}
	outBody, err := json.Marshal(parsed)
	if err != nil {
		h.relayError(w, r, name, err, startTime)
		return
	}

	result, err := p.Forward(r.Context(), outBody)
	if err != nil {
		if errors.Is(err, types.ErrNoAPIKey) {
			apiErr := types.ErrMissingCredential(p.DisplayName())
			types.WriteError(w, http.StatusInternalServerError, apiErr)
			h.observe(r, name, "", http.StatusInternalServerError, 0, apiErr.Error, startTime)
			return
		}
		h.relayError(w, r, name, err, startTime)
		return
	}

	writeRelayed(w, result)

	model := ""
	if relayReq, perr := types.ParseRelayRequest(bodyBytes); perr == nil {
		model = relayReq.Model
	}
	tokens := h.countPromptTokens(bodyBytes)
	h.observe(r, name, model, result.StatusCode, tokens, "", startTime)
}

// relayError converts a caught error into the 500 JSON payload.
func (h *Handlers) relayError(w http.ResponseWriter, r *http.Request, name string, err error, startTime time.Time) {
	apiErr := types.ErrServer(err)
	types.WriteError(w, http.StatusInternalServerError, apiErr)
	h.observe(r, name, "", http.StatusInternalServerError, 0, apiErr.Error, startTime)
}

// observe records the request in the usage tracker, if one is wired.
func (h *Handlers) observe(r *http.Request, providerName, model string, status, tokens int, errMsg string, startTime time.Time) {
	if h.Usage == nil {
		return
	}
	h.Usage.Observe(usage.Record{
		RequestID:    middleware.GetRequestID(r.Context()),
		Provider:     providerName,
		Model:        model,
		StatusCode:   status,
		PromptTokens: tokens,
		ErrorMessage: errMsg,
		DurationMs:   time.Since(startTime).Milliseconds(),
	})
}

// writeRelayed passes an upstream result through unmodified.
func writeRelayed(w http.ResponseWriter, result *types.ProxyResult) {
	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(result.StatusCode)
	_, _ = w.Write(result.Body)
}

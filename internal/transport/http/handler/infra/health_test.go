package infra

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nilmandal/aiproxy/internal/config"
	"github.com/nilmandal/aiproxy/internal/usage"
)

func newTestHandlers(cfg *config.Config) *Handlers {
	return New(cfg, usage.NewTracker(), time.Now())
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want map[string]bool
	}{
		{
			name: "no credentials configured",
			cfg:  &config.Config{},
			want: map[string]bool{"claude": false, "openai": false, "gemini": false},
		},
		{
			name: "only claude configured",
			cfg:  &config.Config{ClaudeAPIKey: "sk-ant-test"},
			want: map[string]bool{"claude": true, "openai": false, "gemini": false},
		},
		{
			name: "all configured",
			cfg:  &config.Config{ClaudeAPIKey: "a", OpenAIAPIKey: "b", GeminiAPIKey: "c"},
			want: map[string]bool{"claude": true, "openai": true, "gemini": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlers(tt.cfg)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			h.HealthCheck(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var payload struct {
				Status          string          `json:"status"`
				AvailableModels map[string]bool `json:"available_models"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if payload.Status != "healthy" {
				t.Errorf("status = %q", payload.Status)
			}
			for name, want := range tt.want {
				if payload.AvailableModels[name] != want {
					t.Errorf("available_models[%s] = %v, want %v", name, payload.AvailableModels[name], want)
				}
			}
		})
	}
}

func TestRootStatus(t *testing.T) {
	h := newTestHandlers(&config.Config{EnableStats: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.RootStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		Service   string   `json:"service"`
		Status    string   `json:"status"`
		Endpoints []string `json:"endpoints"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload.Service != "AI API Proxy" {
		t.Errorf("service = %q", payload.Service)
	}
	if payload.Status != "active" {
		t.Errorf("status = %q", payload.Status)
	}

	wantEndpoints := map[string]bool{"/health": false, "/proxy/claude": false, "/proxy/openai": false, "/proxy/gemini": false, "/stats": false}
	for _, ep := range payload.Endpoints {
		wantEndpoints[ep] = true
	}
	for ep, seen := range wantEndpoints {
		if !seen {
			t.Errorf("endpoint %q missing from descriptor", ep)
		}
	}
}

func TestRootStatusStatsDisabled(t *testing.T) {
	h := newTestHandlers(&config.Config{EnableStats: false})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.RootStatus(rec, req)

	var payload struct {
		Endpoints []string `json:"endpoints"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	for _, ep := range payload.Endpoints {
		if ep == "/stats" {
			t.Error("/stats listed with stats disabled")
		}
	}
}

func TestStats(t *testing.T) {
	h := newTestHandlers(&config.Config{EnableStats: true})
	h.Usage.Observe(usage.Record{Provider: "openai", StatusCode: 200, PromptTokens: 4})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		Usage struct {
			Providers map[string]struct {
				RequestCount int `json:"request_count"`
			} `json:"providers"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload.Usage.Providers["openai"].RequestCount != 1 {
		t.Errorf("openai request_count = %d, want 1", payload.Usage.Providers["openai"].RequestCount)
	}
}

func TestNotFound(t *testing.T) {
	h := newTestHandlers(&config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/unknown-path", nil)
	rec := httptest.NewRecorder()
	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec.Body.String() != "{\"error\":\"Endpoint not found\"}\n" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

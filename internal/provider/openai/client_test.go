package openai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nilmandal/aiproxy/internal/types"
)

func TestForwardRelaysVerbatim(t *testing.T) {
	var gotBody []byte
	var gotAuth string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1","choices":[]}`))
	}))
	defer upstream.Close()

	c := NewWithBaseURL("sk-test", upstream.URL)

	result, err := c.Forward(context.Background(), []byte(`{"model":"gpt-4","messages":[]}`))
	if err != nil {
		t.Fatalf("Forward() error: %v", err)
	}

	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}
	if string(result.Body) != `{"id":"chatcmpl-1","choices":[]}` {
		t.Errorf("Body = %q, want upstream body unmodified", result.Body)
	}
	if string(gotBody) != `{"model":"gpt-4","messages":[]}` {
		t.Errorf("upstream received body = %q", gotBody)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestForwardPassesThroughUpstreamErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"invalid_api_key"}}`))
	}))
	defer upstream.Close()

	c := NewWithBaseURL("sk-bad", upstream.URL)

	result, err := c.Forward(context.Background(), []byte(`{}`))
	if err != nil {
		t.Fatalf("Forward() should not treat upstream 401 as error: %v", err)
	}
	if result.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", result.StatusCode)
	}
}

func TestForwardWithoutKey(t *testing.T) {
	c := New("")

	_, err := c.Forward(context.Background(), []byte(`{}`))
	if !errors.Is(err, types.ErrNoAPIKey) {
		t.Errorf("Forward() error = %v, want ErrNoAPIKey", err)
	}
}

func TestClientIdentity(t *testing.T) {
	c := New("sk-test")

	if c.Name() != "openai" {
		t.Errorf("Name() = %q", c.Name())
	}
	if c.DisplayName() != "OpenAI" {
		t.Errorf("DisplayName() = %q", c.DisplayName())
	}
	if !c.Available() {
		t.Error("Available() = false with key set")
	}
}

// Package types defines the wire shapes shared by handlers and providers.
package types

import "encoding/json"

// Message roles used by both the Anthropic and OpenAI chat schemas.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message. Content is kept as a raw string;
// bodies are relayed opaquely, this shape exists only for token counting
// and log metadata.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RelayRequest is the subset of a provider chat request the proxy peeks
// at before forwarding. Unknown fields are preserved untouched in the
// raw body; this struct never round-trips back to the wire.
type RelayRequest struct {
	Model    string    `json:"model"`
	System   string    `json:"system,omitempty"` // Anthropic-style top-level system prompt
	Messages []Message `json:"messages"`
}

// ParseRelayRequest extracts relay metadata from a raw JSON body.
// Message content that isn't a plain string (array-of-parts forms) is
// left empty rather than rejected; the body still relays verbatim.
func ParseRelayRequest(body []byte) (*RelayRequest, error) {
	var loose struct {
		Model    string `json:"model"`
		System   string `json:"system"`
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(body, &loose); err != nil {
		return nil, err
	}

	req := &RelayRequest{
		Model:  loose.Model,
		System: loose.System,
	}
	for _, m := range loose.Messages {
		msg := Message{Role: m.Role}
		var s string
		if err := json.Unmarshal(m.Content, &s); err == nil {
			msg.Content = s
		}
		req.Messages = append(req.Messages, msg)
	}
	return req, nil
}

// NewTextMessage creates a plain text message.
func NewTextMessage(role, content string) Message {
	return Message{Role: role, Content: content}
}

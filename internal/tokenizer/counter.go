package tokenizer

import "github.com/nilmandal/aiproxy/internal/types"

// Per-message and reply overheads based on OpenAI's published counting
// rules. Other providers don't document equivalents; the same values are
// used as an estimate since these counts only feed usage stats.
const (
	messageOverhead    = 3 // <|start|>role<|end|>
	replyPrimingTokens = 3
)

// CountMessages counts tokens for a slice of messages.
func (t *TiktokenTokenizer) CountMessages(messages []types.Message, model string) (int, error) {
	total := 0

	for _, msg := range messages {
		tokens, err := t.CountTokens(msg.Content, model)
		if err != nil {
			return 0, err
		}
		roleTokens, err := t.CountTokens(msg.Role, model)
		if err != nil {
			return 0, err
		}
		total += tokens + roleTokens + messageOverhead
	}

	// Add reply priming tokens
	total += replyPrimingTokens

	return total, nil
}

// CountRequest counts total prompt tokens for a parsed relay request,
// including an Anthropic-style top-level system prompt if present.
func (t *TiktokenTokenizer) CountRequest(req *types.RelayRequest) (int, error) {
	total, err := t.CountMessages(req.Messages, req.Model)
	if err != nil {
		return 0, err
	}

	if req.System != "" {
		sysTokens, err := t.CountTokens(req.System, req.Model)
		if err != nil {
			return 0, err
		}
		total += sysTokens + messageOverhead
	}

	return total, nil
}

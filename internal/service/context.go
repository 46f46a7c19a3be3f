package service

import (
	"strings"

	"github.com/futureday25/viberlab/internal/domain"
)

const (
	noHistoryFallback = "No prior conversation between user and assistant."
	noCodeFallback    = "(no current code provided)"
)

// BuildRequestMessages assembles the exact message sequence sent upstream
// for one turn: every system message verbatim, followed by a single
// synthetic user message that flattens prior user prompts, injects the
// current code draft, and ends with the new ask.
//
// Assistant messages are deliberately not replayed; the draft already
// encodes their cumulative effect. newPrompt must be the content of the most
// recent user message in messages.
func BuildRequestMessages(messages []domain.ChatMessage, codeDraft, newPrompt string) []domain.LlmMessage {
	var out []domain.LlmMessage
	for _, msg := range messages {
		if msg.Role == domain.RoleSystem {
			out = append(out, domain.LlmMessage{Role: msg.Role, Content: msg.Content})
		}
	}

	var userMessages []domain.ChatMessage
	for _, msg := range messages {
		if msg.Role == domain.RoleUser {
			userMessages = append(userMessages, msg)
		}
	}

	// The most recent user message is the prompt being composed right now,
	// so it belongs in the "new ask" section, not the history.
	historyBlock := noHistoryFallback
	if len(userMessages) > 1 {
		lines := make([]string, 0, len(userMessages)-1)
		for _, msg := range userMessages[:len(userMessages)-1] {
			lines = append(lines, "user: "+msg.Content)
		}
		historyBlock = strings.Join(lines, "\n\n")
	}

	code := codeDraft
	if strings.TrimSpace(code) == "" {
		code = noCodeFallback
	}

	content := strings.Join([]string{
		"past messages:",
		historyBlock,
		"",
		"the current code:",
		code,
		"",
		"new ask:",
		newPrompt,
	}, "\n")

	return append(out, domain.LlmMessage{Role: domain.RoleUser, Content: content})
}

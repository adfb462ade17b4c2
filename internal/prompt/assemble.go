package prompt

import (
	"fmt"
	"strings"
)

// Message roles in a conversation history
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Message is one turn of conversation history, as submitted by the chat UI.
type Message struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// FormatHistory serializes a conversation history as role-tagged lines.
// An empty history yields an empty string.
func FormatHistory(history []Message) string {
	if len(history) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\nPrevious conversation:\n")
	for _, msg := range history {
		role := "Assistant"
		if msg.Type == RoleUser {
			role = "User"
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", role, msg.Content))
	}
	return sb.String()
}

// Assemble joins the system prompt, the serialized history and the user's
// message into the single prompt string sent to the model.
func Assemble(systemPrompt string, history []Message, userMessage string) string {
	return fmt.Sprintf("%s\n\n%s\n\nUser: %s\n\nAssistant:",
		systemPrompt, FormatHistory(history), userMessage)
}

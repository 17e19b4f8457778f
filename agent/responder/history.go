package responder

import (
	"strings"
	"time"

	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

// renderHistory formats prior conversation turns as role-labeled lines for
// prompt consumption.
func renderHistory(history []contractx.ConversationTurn) string {
	if len(history) == 0 {
		return ""
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		role := capitalize(string(turn.Role))
		lines = append(lines, role+": "+turn.Content)
	}
	return strings.Join(lines, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func newResult(agentName string, content string, metadata map[string]any) contractx.ResponderResult {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return contractx.ResponderResult{
		AgentName: agentName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Content:   content,
		Metadata:  metadata,
	}
}

// Package prompt renders conversation histories into the plain-text framing
// the completion model was conditioned on. The format is a wire contract:
// changing it changes model behavior, so it must stay byte-exact.
package prompt

import (
	"strings"

	"github.com/parley-labs/parley/pkg/models"
)

// StopSequence halts generation before the model invents the next user turn.
const StopSequence = "USER:"

// Build renders each message as "USER: <content>\n" or "ASSISTANT: <content>\n"
// in history order, then appends a trailing "ASSISTANT:" cue with no newline
// so the model produces the next assistant turn.
func Build(history []models.Message) string {
	var b strings.Builder
	for _, msg := range history {
		if msg.Role == models.RoleAssistant {
			b.WriteString("ASSISTANT: ")
		} else {
			b.WriteString("USER: ")
		}
		b.WriteString(msg.Content)
		b.WriteByte('\n')
	}
	b.WriteString("ASSISTANT:")
	return b.String()
}

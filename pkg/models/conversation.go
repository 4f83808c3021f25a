// Package models contains shared data models used across the Parley codebase.
package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversational turn. Messages are immutable once
// appended to a session history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationParams are per-request tuning knobs for the completion engine.
// Zero values mean "use the configured defaults". Range enforcement beyond
// positivity is left to the engine.
type GenerationParams struct {
	MaxTokens   int
	Temperature float64
}

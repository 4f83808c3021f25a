package models

import "context"

// Completer is the text-generation capability. Implementations are blocking
// and may take seconds per call; callers must keep them off the request
// path where latency matters.
type Completer interface {
	// Complete generates the next assistant turn for a rendered prompt.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name returns the engine identifier (e.g., "openai", "ollama").
	Name() string
}

// Transcriber converts an audio file on disk into text. Like Completer,
// calls are blocking and CPU/GPU-bound on the engine side.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Name() string
}

// CompletionRequest is the input to a completion call. Prompt carries the
// full rendered conversation; Stop keeps the model from generating past the
// next assistant turn.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	Stop        []string
}

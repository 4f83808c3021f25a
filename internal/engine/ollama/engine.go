// Package ollama backs the completion capability with a local Ollama
// runtime, the deployment analog of running a quantized model in-process.
package ollama

import (
	"context"
	"fmt"
	"strings"

	ollamasdk "github.com/rozoomcool/go-ollama-sdk"

	"github.com/parley-labs/parley/internal/config"
	"github.com/parley-labs/parley/pkg/models"
)

// Engine implements models.Completer against an Ollama server.
type Engine struct {
	client *ollamasdk.OllamaClient
	model  string
}

func NewEngine(cfg config.OllamaConfig) *Engine {
	return &Engine{
		client: ollamasdk.NewClient(cfg.BaseURL),
		model:  cfg.Model,
	}
}

func (e *Engine) Name() string { return "ollama" }

// Complete sends the rendered prompt as a single user message. The SDK chat
// call exposes no stop-sequence or temperature controls, so those params
// are advisory for this engine; the prompt framing alone keeps replies on
// track in practice.
func (e *Engine) Complete(_ context.Context, req models.CompletionRequest) (string, error) {
	text, err := e.client.Chat(e.model, []ollamasdk.ChatMessage{
		{Role: "user", Content: req.Prompt},
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	return strings.TrimSpace(text), nil
}

var _ models.Completer = (*Engine)(nil)

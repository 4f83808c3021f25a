// Package engine selects and wires the inference backends behind the
// Completer and Transcriber capabilities.
package engine

import (
	"fmt"

	"github.com/parley-labs/parley/internal/config"
	"github.com/parley-labs/parley/internal/engine/ollama"
	"github.com/parley-labs/parley/internal/engine/openai"
	"github.com/parley-labs/parley/pkg/models"
)

// New constructs the configured engines. Called once at server startup.
// Either capability may come back nil: the completer when chat is disabled,
// the transcriber when the selected provider cannot transcribe. Callers
// treat a nil capability as "model not loaded" rather than an error; the
// server still serves whatever the other capability can do.
func New(cfg config.EngineConfig) (models.Completer, models.Transcriber, error) {
	var completer models.Completer
	var transcriber models.Transcriber

	switch cfg.Provider {
	case "openai":
		eng := openai.NewEngine(cfg.OpenAI)
		completer = eng
		transcriber = eng
	case "ollama":
		completer = ollama.NewEngine(cfg.Ollama)
		// Ollama has no speech-to-text; fall back to OpenAI for
		// transcription when credentials are present.
		if cfg.OpenAI.APIKey != "" {
			transcriber = openai.NewEngine(cfg.OpenAI)
		}
	default:
		return nil, nil, fmt.Errorf("unknown engine provider %q: must be one of openai, ollama", cfg.Provider)
	}

	if !cfg.ChatEnabled {
		completer = nil
	}

	return completer, transcriber, nil
}

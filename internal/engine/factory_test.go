package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley/internal/config"
	"github.com/parley-labs/parley/internal/engine"
)

func baseConfig(provider string) config.EngineConfig {
	return config.EngineConfig{
		Provider:    provider,
		ChatEnabled: true,
		MaxTokens:   1024,
		Temperature: 0.7,
		OpenAI: config.OpenAIConfig{
			APIKey:          "sk-test",
			ChatModel:       "gpt-4o-mini",
			TranscribeModel: "whisper-1",
		},
		Ollama: config.OllamaConfig{
			BaseURL: "http://localhost:11434",
			Model:   "llama3",
		},
	}
}

func TestNew_OpenAIServesBothCapabilities(t *testing.T) {
	completer, transcriber, err := engine.New(baseConfig("openai"))
	require.NoError(t, err)

	require.NotNil(t, completer)
	require.NotNil(t, transcriber)
	assert.Equal(t, "openai", completer.Name())
	assert.Equal(t, "openai", transcriber.Name())
}

func TestNew_OllamaWithOpenAIFallbackTranscriber(t *testing.T) {
	completer, transcriber, err := engine.New(baseConfig("ollama"))
	require.NoError(t, err)

	require.NotNil(t, completer)
	assert.Equal(t, "ollama", completer.Name())
	require.NotNil(t, transcriber)
	assert.Equal(t, "openai", transcriber.Name())
}

func TestNew_OllamaWithoutCredentialsHasNoTranscriber(t *testing.T) {
	cfg := baseConfig("ollama")
	cfg.OpenAI.APIKey = ""

	completer, transcriber, err := engine.New(cfg)
	require.NoError(t, err)

	assert.NotNil(t, completer)
	assert.Nil(t, transcriber)
}

func TestNew_ChatDisabledDropsCompleter(t *testing.T) {
	cfg := baseConfig("openai")
	cfg.ChatEnabled = false

	completer, transcriber, err := engine.New(cfg)
	require.NoError(t, err)

	assert.Nil(t, completer)
	assert.NotNil(t, transcriber)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, _, err := engine.New(baseConfig("whispercpp"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whispercpp")
}

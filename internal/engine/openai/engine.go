// Package openai backs both inference capabilities with the OpenAI API:
// chat completions for text generation and whisper for speech-to-text.
package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	oai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/parley-labs/parley/internal/config"
	"github.com/parley-labs/parley/pkg/models"
)

// Engine implements models.Completer and models.Transcriber.
type Engine struct {
	client oai.Client
	cfg    config.OpenAIConfig
}

func NewEngine(cfg config.OpenAIConfig) *Engine {
	opts := make([]option.RequestOption, 0, 2)
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return &Engine{client: oai.NewClient(opts...), cfg: cfg}
}

func (e *Engine) Name() string { return "openai" }

// Complete sends the rendered prompt as a single user message. The prompt
// framing already encodes the conversation structure, so no chat-role
// mapping happens here.
func (e *Engine) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	params := oai.ChatCompletionNewParams{
		Model: oai.ChatModel(e.cfg.ChatModel),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage(req.Prompt),
		},
		Temperature: oai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = oai.Int(int64(req.MaxTokens))
	}
	if len(req.Stop) > 0 {
		params.Stop = oai.ChatCompletionNewParamsStopUnion{OfStringArray: req.Stop}
	}

	completion, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if completion == nil || len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// Transcribe uploads the audio file to the transcription endpoint and
// returns the recognized text.
func (e *Engine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	resp, err := e.client.Audio.Transcriptions.New(ctx, oai.AudioTranscriptionNewParams{
		File:           file,
		Model:          oai.AudioModel(e.cfg.TranscribeModel),
		ResponseFormat: oai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}
	if resp == nil {
		return "", errors.New("transcription returned nil response")
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", errors.New("transcription response is empty")
	}
	return text, nil
}

var (
	_ models.Completer   = (*Engine)(nil)
	_ models.Transcriber = (*Engine)(nil)
)
